package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// UpdateSection carries a partial update: nil fields are left untouched.
type UpdateSection struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
}

// SectionRepository defines persistence operations for sections and their
// membership lists.
type SectionRepository interface {
	Insert(ctx context.Context, s *domain.Section) (*domain.Section, error)
	FindByID(ctx context.Context, id string) (*domain.Section, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Update(ctx context.Context, id string, upd UpdateSection) (*domain.Section, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, sectionID, userID string) error
	RemoveMember(ctx context.Context, sectionID, userID string) error
	// RemoveMemberAll pulls the user out of every section; used by the
	// user-deletion cascade.
	RemoveMemberAll(ctx context.Context, userID string) error
}
