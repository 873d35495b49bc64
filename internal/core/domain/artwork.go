package domain

import "time"

// Artwork is an owner-scoped content record. OwnerName is denormalized at
// creation time so public reads stay single-collection.
type Artwork struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	SectionID   string    `json:"section_id,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
