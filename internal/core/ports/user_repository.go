package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// UpdateUser carries the admin-editable user attributes. Nil fields are
// left untouched. Role changes go through UpdateRole so the enum check
// cannot be skipped.
type UpdateUser struct {
	FullName *string
	Username *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UpdateUser) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
