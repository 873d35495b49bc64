package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// UpdateArtwork carries a partial update: nil fields are left untouched.
// There is deliberately no owner field — ownership is never updatable.
type UpdateArtwork struct {
	Title       *string
	Description *string
	ImageURL    *string
	SectionID   *string
	Featured    *bool
}

// ArtworkRepository defines persistence operations for artworks.
//
// Update and Delete take an optional ownerID: when non-empty the statement
// re-asserts owner_id in its filter, so the ownership check and the write
// cannot be separated by a concurrent mutation. The admin path passes "".
type ArtworkRepository interface {
	Insert(ctx context.Context, a *domain.Artwork) (*domain.Artwork, error)
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)
	// OwnerID does a fresh projected read of the persisted owner.
	OwnerID(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]*domain.Artwork, error)
	ListFeatured(ctx context.Context) ([]*domain.Artwork, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Artwork, error)
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Artwork, error)
	Update(ctx context.Context, id, ownerID string, upd UpdateArtwork) (*domain.Artwork, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
