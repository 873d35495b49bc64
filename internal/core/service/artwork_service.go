package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// ArtworkService implements the owner-scoped and admin artwork use cases.
type ArtworkService struct {
	repo   ports.ArtworkRepository
	users  ports.UserRepository
	cache  ContentCache
	logger zerolog.Logger
}

func NewArtworkService(repo ports.ArtworkRepository, users ports.UserRepository, cache ContentCache, logger zerolog.Logger) *ArtworkService {
	return &ArtworkService{repo: repo, users: users, cache: cache, logger: logger}
}

// Create stores a new artwork owned by the acting identity. The owner id
// is taken from the verified token, never from the payload.
func (s *ArtworkService) Create(ctx context.Context, actor authz.Identity, in ports.CreateArtworkInput) (*domain.Artwork, error) {
	owner, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		OwnerID:     owner.ID,
		OwnerName:   owner.FullName,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SectionID:   in.SectionID,
		Featured:    in.Featured,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, artwork)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create artwork")
		return nil, err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("artwork_id", created.ID).Str("owner_id", owner.ID).Msg("artwork created")
	return created, nil
}

func (s *ArtworkService) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArtworkService) ListPublic(ctx context.Context) ([]*domain.Artwork, error) {
	return s.repo.List(ctx)
}

// ListFeatured serves the landing-page selection through the cache.
func (s *ArtworkService) ListFeatured(ctx context.Context) ([]*domain.Artwork, error) {
	var cached []*domain.Artwork
	hit, err := s.cache.GetJSON(ctx, featuredCacheKey, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("featured cache read failed, falling through")
	} else if hit {
		return cached, nil
	}

	artworks, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, featuredCacheKey, artworks, featuredCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("featured cache write failed")
	}
	return artworks, nil
}

func (s *ArtworkService) ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.Artwork, error) {
	return s.repo.ListByOwner(ctx, actor.UserID)
}

// Update is the owner-scoped path: the persisted owner is re-read and
// compared before the write, and the write itself re-asserts ownership.
func (s *ArtworkService) Update(ctx context.Context, actor authz.Identity, id string, upd ports.UpdateArtwork) (*domain.Artwork, error) {
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, actor.UserID, upd)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *ArtworkService) Delete(ctx context.Context, actor authz.Identity, id string) error {
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, actor.UserID); err != nil {
		return err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("artwork_id", id).Str("owner_id", actor.UserID).Msg("artwork deleted")
	return nil
}

// AdminUpdate operates on any artwork; the role gate runs at the route and
// the admin-override table is asserted here so the two paths never merge.
func (s *ArtworkService) AdminUpdate(ctx context.Context, id string, upd ports.UpdateArtwork) (*domain.Artwork, error) {
	if !authz.AdminManaged(authz.KindArtwork) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, "", upd)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *ArtworkService) AdminDelete(ctx context.Context, id string) error {
	if !authz.AdminManaged(authz.KindArtwork) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id, ""); err != nil {
		return err
	}

	s.invalidateFeatured(ctx)
	s.logger.Info().Str("artwork_id", id).Msg("artwork deleted by admin")
	return nil
}

func (s *ArtworkService) invalidateFeatured(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, featuredCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("featured cache invalidation failed")
	}
}
