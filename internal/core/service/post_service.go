package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// latestPostsLimit caps the public "latest posts" feed.
const latestPostsLimit = 10

// PostService implements the owner-scoped and admin blog-post use cases.
type PostService struct {
	repo   ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, users: users, logger: logger}
}

func (s *PostService) Create(ctx context.Context, actor authz.Identity, in ports.CreatePostInput) (*domain.BlogPost, error) {
	owner, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		OwnerID:   owner.ID,
		OwnerName: owner.FullName,
		Title:     in.Title,
		Content:   in.Content,
		SectionID: in.SectionID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("owner_id", owner.ID).Msg("post created")
	return created, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListPublic(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *PostService) ListLatest(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.ListLatest(ctx, latestPostsLimit)
}

func (s *PostService) ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.BlogPost, error) {
	return s.repo.ListByOwner(ctx, actor.UserID)
}

func (s *PostService) Update(ctx context.Context, actor authz.Identity, id string, upd ports.UpdatePost) (*domain.BlogPost, error) {
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, actor.UserID, upd)
}

func (s *PostService) Delete(ctx context.Context, actor authz.Identity, id string) error {
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, actor.UserID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Str("owner_id", actor.UserID).Msg("post deleted")
	return nil
}

func (s *PostService) AdminUpdate(ctx context.Context, id string, upd ports.UpdatePost) (*domain.BlogPost, error) {
	if !authz.AdminManaged(authz.KindPost) {
		return nil, domain.ErrForbidden
	}
	return s.repo.Update(ctx, id, "", upd)
}

func (s *PostService) AdminDelete(ctx context.Context, id string) error {
	if !authz.AdminManaged(authz.KindPost) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id, ""); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted by admin")
	return nil
}
