package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// UpdatePost carries a partial update: nil fields are left untouched.
type UpdatePost struct {
	Title     *string
	Content   *string
	SectionID *string
}

// PostRepository defines persistence operations for blog posts. The
// ownerID semantics on Update/Delete match ArtworkRepository.
type PostRepository interface {
	Insert(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	OwnerID(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
	ListLatest(ctx context.Context, limit int) ([]*domain.BlogPost, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.BlogPost, error)
	ListBySection(ctx context.Context, sectionID string) ([]*domain.BlogPost, error)
	Update(ctx context.Context, id, ownerID string, upd UpdatePost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
