package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// DashboardStats are the admin landing-page totals.
type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalArtworks int64 `json:"total_artworks"`
	TotalPosts    int64 `json:"total_posts"`
}

// AllContent is the admin view over every artwork and post in the system.
type AllContent struct {
	Artworks []*domain.Artwork  `json:"artworks"`
	Posts    []*domain.BlogPost `json:"posts"`
}

// DashboardService serves the admin dashboard aggregates.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	AllContent(ctx context.Context) (*AllContent, error)
}
