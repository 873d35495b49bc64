package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// UserService implements admin user management plus the public artist views.
type UserService struct {
	repo     ports.UserRepository
	artworks ports.ArtworkRepository
	posts    ports.PostRepository
	wellness ports.WellnessRepository
	sections ports.SectionRepository
	logger   zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	artworks ports.ArtworkRepository,
	posts ports.PostRepository,
	wellness ports.WellnessRepository,
	sections ports.SectionRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:     repo,
		artworks: artworks,
		posts:    posts,
		wellness: wellness,
		sections: sections,
		logger:   logger,
	}
}

// Create is the admin path for provisioning accounts with a chosen role.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.FullName == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user created by admin")
	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, upd ports.UpdateUser) (*domain.User, error) {
	return s.repo.Update(ctx, id, upd)
}

// ChangeRole validates against the closed enum before touching the store,
// so an invalid value can never reach a persisted role.
func (s *UserService) ChangeRole(ctx context.Context, id, role string) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("role", role).Msg("role changed")
	return updated, nil
}

// Delete removes a user and fans out to everything they own: artworks,
// posts, wellness entries and section memberships. The self-deletion guard
// runs after authentication and the role gate, before anything is touched.
func (s *UserService) Delete(ctx context.Context, actor authz.Identity, id string) error {
	if err := authz.RequireNotSelf(actor, id); err != nil {
		return err
	}

	// Fresh existence check so a repeated delete reads as NotFound.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	artworks, err := s.artworks.DeleteByOwner(ctx, id)
	if err != nil {
		return err
	}
	posts, err := s.posts.DeleteByOwner(ctx, id)
	if err != nil {
		return err
	}
	entries, err := s.wellness.DeleteByOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sections.RemoveMemberAll(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("user_id", id).
		Str("deleted_by", actor.UserID).
		Int64("artworks", artworks).
		Int64("posts", posts).
		Int64("wellness_entries", entries).
		Msg("user deleted with cascade")
	return nil
}

// ListArtists returns the public roster: every player account.
func (s *UserService) ListArtists(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RolePlayer)
}

// ArtistProfile aggregates an artist with their artworks and posts.
func (s *UserService) ArtistProfile(ctx context.Context, id string) (*ports.ArtistProfile, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artworks, err := s.artworks.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.ArtistProfile{Artist: artist, Artworks: artworks, Posts: posts}, nil
}

// EnsureAdmin seeds the bootstrap administrator account on first start.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Admin",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}
