package group

import "time"

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// PilgrimInfo is the roster entry denormalized from the user account.
type PilgrimInfo struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// PilgrimageGroup represents one travel group. Dates are stored as
// YYYY-MM-DD strings, matching the wire format.
type PilgrimageGroup struct {
	ID          string        `json:"id" bson:"id"`
	Name        string        `json:"name" bson:"name"`
	Destination string        `json:"destination" bson:"destination"`
	StartDate   string        `json:"start_date" bson:"start_date"`
	EndDate     string        `json:"end_date" bson:"end_date"`
	Status      string        `json:"status" bson:"status"`
	Pilgrims    []PilgrimInfo `json:"pilgrims" bson:"pilgrims"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// GroupUpdate is a partial update. Nil fields are left untouched in storage.
type GroupUpdate struct {
	Name        *string `json:"name,omitempty"`
	Destination *string `json:"destination,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ValidStatus reports whether s is one of the four pilgrimage states.
func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
