package ports

import (
	"context"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// UpdateWellnessEntry carries a partial update: nil fields are left
// untouched.
type UpdateWellnessEntry struct {
	SessionType     *domain.SessionType
	DurationMinutes *int
	FatiguePre      *int
	SleepQuality    *int
	SleepHours      *float64
	StressLevel     *int
	Mood            *int
	MuscleSoreness  *int
	InjuryPain      *int
	MenstrualPeriod *bool
	NutritionQual   *int
	FatiguePost     *int
	RPE             *int
	Comments        *string
}

// WellnessRepository defines persistence operations for wellness entries.
// The ownerID on Update/Delete is always required: wellness entries have no
// admin mutation path.
type WellnessRepository interface {
	Insert(ctx context.Context, e *domain.WellnessEntry) (*domain.WellnessEntry, error)
	FindByID(ctx context.Context, id string) (*domain.WellnessEntry, error)
	OwnerID(ctx context.Context, id string) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.WellnessEntry, error)
	ListAll(ctx context.Context) ([]*domain.WellnessEntry, error)
	Update(ctx context.Context, id, ownerID string, upd UpdateWellnessEntry) (*domain.WellnessEntry, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
