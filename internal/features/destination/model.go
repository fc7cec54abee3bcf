package destination

import "time"

// Destination is reference data about a pilgrimage site. Independent of
// groups; publicly readable.
type Destination struct {
	ID                    string    `json:"id" bson:"id"`
	Name                  string    `json:"name" bson:"name"`
	Country               string    `json:"country" bson:"country"`
	Description           string    `json:"description" bson:"description"`
	Facts                 []string  `json:"facts" bson:"facts"`
	SpiritualSignificance string    `json:"spiritual_significance" bson:"spiritual_significance"`
	ImageURL              string    `json:"image_url" bson:"image_url"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" bson:"updated_at"`
}

// DestinationUpdate is a partial update. Nil fields are left untouched
// in storage.
type DestinationUpdate struct {
	Name                  *string   `json:"name,omitempty"`
	Country               *string   `json:"country,omitempty"`
	Description           *string   `json:"description,omitempty"`
	Facts                 *[]string `json:"facts,omitempty"`
	SpiritualSignificance *string   `json:"spiritual_significance,omitempty"`
	ImageURL              *string   `json:"image_url,omitempty"`
}
