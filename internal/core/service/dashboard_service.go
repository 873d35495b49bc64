package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// DashboardService serves the admin dashboard aggregates. The totals go
// through the cache since they are hit on every dashboard load.
type DashboardService struct {
	users    ports.UserRepository
	artworks ports.ArtworkRepository
	posts    ports.PostRepository
	cache    ContentCache
	logger   zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	artworks ports.ArtworkRepository,
	posts ports.PostRepository,
	cache ContentCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{users: users, artworks: artworks, posts: posts, cache: cache, logger: logger}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var cached ports.DashboardStats
	hit, err := s.cache.GetJSON(ctx, statsCacheKey, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stats cache read failed, falling through")
	} else if hit {
		return &cached, nil
	}

	users, err := s.users.CountByRole(ctx, domain.RolePlayer)
	if err != nil {
		return nil, err
	}
	artworks, err := s.artworks.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		TotalUsers:    users,
		TotalArtworks: artworks,
		TotalPosts:    posts,
	}

	if err := s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache write failed")
	}
	return stats, nil
}

func (s *DashboardService) AllContent(ctx context.Context) (*ports.AllContent, error) {
	artworks, err := s.artworks.List(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.AllContent{Artworks: artworks, Posts: posts}, nil
}
