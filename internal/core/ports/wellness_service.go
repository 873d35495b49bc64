package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// CreateWellnessInput carries a self-report submission. The owner always
// comes from the verified identity.
type CreateWellnessInput struct {
	SessionType     string
	DurationMinutes int
	FatiguePre      int
	SleepQuality    int
	SleepHours      float64
	StressLevel     int
	Mood            int
	MuscleSoreness  int
	InjuryPain      int
	MenstrualPeriod bool
	NutritionQual   int
	FatiguePost     int
	RPE             int
	Comments        string
}

// WellnessService defines wellness-entry operations. Entries are owner-only:
// AdminListAll is the only admin-facing operation, and there is no admin
// mutate or delete path at all.
type WellnessService interface {
	Create(ctx context.Context, actor authz.Identity, in CreateWellnessInput) (*domain.WellnessEntry, error)
	ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.WellnessEntry, error)
	Update(ctx context.Context, actor authz.Identity, id string, upd UpdateWellnessEntry) (*domain.WellnessEntry, error)
	Delete(ctx context.Context, actor authz.Identity, id string) error
	AdminListAll(ctx context.Context) ([]*domain.WellnessEntry, error)
}
