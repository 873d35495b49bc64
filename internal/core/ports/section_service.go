package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// CreateSectionInput carries the admin-supplied section fields.
type CreateSectionInput struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
}

// SectionMember is the public view of a section member.
type SectionMember struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// SectionProfile aggregates a section with its content and members for the
// public profile endpoint.
type SectionProfile struct {
	Section  *domain.Section    `json:"section"`
	Artworks []*domain.Artwork  `json:"artworks"`
	Posts    []*domain.BlogPost `json:"posts"`
	Members  []SectionMember    `json:"members"`
}

// SectionService defines section operations. All mutation is admin-only;
// there is no ownership dimension.
type SectionService interface {
	Create(ctx context.Context, in CreateSectionInput) (*domain.Section, error)
	Update(ctx context.Context, id string, upd UpdateSection) (*domain.Section, error)
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context) ([]*domain.Section, error)
	// Profile resolves slugOrID as a slug first, then as an id, matching
	// the public contract.
	Profile(ctx context.Context, slugOrID string) (*SectionProfile, error)
	AddMember(ctx context.Context, sectionID, userID string) error
	RemoveMember(ctx context.Context, sectionID, userID string) error
}
