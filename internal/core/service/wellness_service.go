package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// WellnessService implements the self-report use cases. Entries are strictly
// owner-scoped; the only admin-facing operation is the read-all listing.
type WellnessService struct {
	repo   ports.WellnessRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewWellnessService(repo ports.WellnessRepository, users ports.UserRepository, logger zerolog.Logger) *WellnessService {
	return &WellnessService{repo: repo, users: users, logger: logger}
}

func (s *WellnessService) Create(ctx context.Context, actor authz.Identity, in ports.CreateWellnessInput) (*domain.WellnessEntry, error) {
	sessionType := domain.SessionType(in.SessionType)
	if !sessionType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	owner, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	entry := &domain.WellnessEntry{
		OwnerID:         owner.ID,
		OwnerName:       owner.FullName,
		SessionType:     sessionType,
		DurationMinutes: in.DurationMinutes,
		FatiguePre:      in.FatiguePre,
		SleepQuality:    in.SleepQuality,
		SleepHours:      in.SleepHours,
		StressLevel:     in.StressLevel,
		Mood:            in.Mood,
		MuscleSoreness:  in.MuscleSoreness,
		InjuryPain:      in.InjuryPain,
		MenstrualPeriod: in.MenstrualPeriod,
		NutritionQual:   in.NutritionQual,
		FatiguePost:     in.FatiguePost,
		RPE:             in.RPE,
		Comments:        in.Comments,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create wellness entry")
		return nil, err
	}

	s.logger.Info().Str("entry_id", created.ID).Str("owner_id", owner.ID).Msg("wellness entry created")
	return created, nil
}

func (s *WellnessService) ListOwn(ctx context.Context, actor authz.Identity) ([]*domain.WellnessEntry, error) {
	return s.repo.ListByOwner(ctx, actor.UserID)
}

func (s *WellnessService) Update(ctx context.Context, actor authz.Identity, id string, upd ports.UpdateWellnessEntry) (*domain.WellnessEntry, error) {
	if upd.SessionType != nil && !upd.SessionType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, actor.UserID, upd)
}

func (s *WellnessService) Delete(ctx context.Context, actor authz.Identity, id string) error {
	if err := authz.RequireOwner(ctx, actor, s.repo.OwnerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, actor.UserID)
}

// AdminListAll is the only admin-facing operation on wellness data; there
// is no admin mutate or delete path.
func (s *WellnessService) AdminListAll(ctx context.Context) ([]*domain.WellnessEntry, error) {
	return s.repo.ListAll(ctx)
}
