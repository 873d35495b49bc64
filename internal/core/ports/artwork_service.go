package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// CreateArtworkInput carries the client-supplied artwork fields. The owner
// always comes from the verified identity, never from the payload.
type CreateArtworkInput struct {
	Title       string
	Description string
	ImageURL    string
	SectionID   string
	Featured    bool
}

// ArtworkService defines use-case operations for artworks. Owner-scoped
// mutations (Update, Delete) enforce ownership with no admin override;
// AdminUpdate/AdminDelete are the separate role-gated path.
type ArtworkService interface {
	Create(ctx context.Context, actor authz.Identity, in CreateArtworkInput) (*domain.Artwork, error)
	GetByID(ctx context.Context, id string) (*domain.Artwork, error)
	ListPublic(ctx context.Context) ([]*domain.Artwork, error)
	ListFeatured(ctx context.Context) ([]*domain.Artwork, error)
	ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.Artwork, error)
	Update(ctx context.Context, actor authz.Identity, id string, upd UpdateArtwork) (*domain.Artwork, error)
	Delete(ctx context.Context, actor authz.Identity, id string) error
	AdminUpdate(ctx context.Context, id string, upd UpdateArtwork) (*domain.Artwork, error)
	AdminDelete(ctx context.Context, id string) error
}
