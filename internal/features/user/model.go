package user

import "time"

const (
	RoleAdmin   = "admin"
	RolePilgrim = "pilgrim"
)

// User is the stored account document. Documents are keyed by the
// portable string "id" field, not Mongo's native _id.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	GroupID      string    `json:"group_id,omitempty" bson:"group_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// UserResponse is the wire shape of an account, without the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	GroupID   string    `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		GroupID:   u.GroupID,
		CreatedAt: u.CreatedAt,
	}
}

// UserUpdate is a partial update. Nil fields are left untouched in storage.
type UserUpdate struct {
	Name         *string `bson:"name,omitempty"`
	Email        *string `bson:"email,omitempty"`
	PasswordHash *string `bson:"password_hash,omitempty"`
	GroupID      *string `bson:"group_id,omitempty"`
}
