package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// CreatePostInput carries the client-supplied post fields.
type CreatePostInput struct {
	Title     string
	Content   string
	SectionID string
}

// PostService defines use-case operations for blog posts, mirroring
// ArtworkService's owner/admin split.
type PostService interface {
	Create(ctx context.Context, actor authz.Identity, in CreatePostInput) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	ListPublic(ctx context.Context) ([]*domain.BlogPost, error)
	ListLatest(ctx context.Context) ([]*domain.BlogPost, error)
	ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.BlogPost, error)
	Update(ctx context.Context, actor authz.Identity, id string, upd UpdatePost) (*domain.BlogPost, error)
	Delete(ctx context.Context, actor authz.Identity, id string) error
	AdminUpdate(ctx context.Context, id string, upd UpdatePost) (*domain.BlogPost, error)
	AdminDelete(ctx context.Context, id string) error
}
