package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// CreateUserInput carries an admin-created account. Unlike registration,
// the role is caller-chosen but still validated against the closed enum.
type CreateUserInput struct {
	FullName string
	Username string
	Password string
	Role     string
}

// ArtistProfile aggregates an artist's public record with their content.
type ArtistProfile struct {
	Artist   *domain.User       `json:"artist"`
	Artworks []*domain.Artwork  `json:"artworks"`
	Posts    []*domain.BlogPost `json:"posts"`
}

// UserService defines user management (admin) and the public artist views.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UpdateUser) (*domain.User, error)
	// ChangeRole validates role against the closed enum before touching
	// the store; an invalid value leaves the stored role unchanged.
	ChangeRole(ctx context.Context, id, role string) (*domain.User, error)
	// Delete enforces the self-deletion guard, then cascades to the
	// target's artworks, posts, wellness entries and section memberships.
	Delete(ctx context.Context, actor authz.Identity, id string) error
	ListArtists(ctx context.Context) ([]*domain.User, error)
	ArtistProfile(ctx context.Context, id string) (*ArtistProfile, error)
	// EnsureAdmin creates the bootstrap administrator account when absent.
	EnsureAdmin(ctx context.Context, username, password string) error
}
