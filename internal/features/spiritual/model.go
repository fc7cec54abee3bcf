package spiritual

import "time"

// SpiritualContent is a devotional text: a prayer, reading or
// meditation. Independent of groups; publicly readable.
type SpiritualContent struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Type      string    `json:"type" bson:"type"`
	Content   string    `json:"content" bson:"content"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ContentUpdate is a partial update. Nil fields are left untouched in
// storage.
type ContentUpdate struct {
	Title    *string `json:"title,omitempty"`
	Type     *string `json:"type,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}
