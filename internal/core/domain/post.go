package domain

import "time"

// BlogPost is an owner-scoped content record.
type BlogPost struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SectionID string    `json:"section_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
