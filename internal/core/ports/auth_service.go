package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// AuthService implements registration and login. Registration always
// produces a player account; privileged accounts come from UserService.
type AuthService interface {
	Register(ctx context.Context, username, password, fullName string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
