package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// SectionService implements section management and the public profiles.
type SectionService struct {
	repo     ports.SectionRepository
	artworks ports.ArtworkRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewSectionService(
	repo ports.SectionRepository,
	artworks ports.ArtworkRepository,
	posts ports.PostRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *SectionService {
	return &SectionService{repo: repo, artworks: artworks, posts: posts, users: users, logger: logger}
}

func (s *SectionService) Create(ctx context.Context, in ports.CreateSectionInput) (*domain.Section, error) {
	section := &domain.Section{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}

	created, err := s.repo.Insert(ctx, section)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("section_id", created.ID).Str("name", created.Name).Msg("section created")
	return created, nil
}

func (s *SectionService) Update(ctx context.Context, id string, upd ports.UpdateSection) (*domain.Section, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *SectionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("section_id", id).Msg("section deleted")
	return nil
}

func (s *SectionService) ListPublic(ctx context.Context) ([]*domain.Section, error) {
	return s.repo.List(ctx)
}

// Profile resolves slugOrID as a slug first, then falls back to an id
// lookup, and aggregates the section's content and member list.
func (s *SectionService) Profile(ctx context.Context, slugOrID string) (*ports.SectionProfile, error) {
	section, err := s.repo.FindBySlug(ctx, slugOrID)
	if errors.Is(err, domain.ErrSectionNotFound) {
		section, err = s.repo.FindByID(ctx, slugOrID)
	}
	if err != nil {
		return nil, err
	}

	artworks, err := s.artworks.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, err
	}

	members := make([]ports.SectionMember, 0, len(section.MemberIDs))
	for _, userID := range section.MemberIDs {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue // membership can outlive an account briefly
			}
			return nil, err
		}
		members = append(members, ports.SectionMember{ID: user.ID, FullName: user.FullName})
	}

	return &ports.SectionProfile{
		Section:  section,
		Artworks: artworks,
		Posts:    posts,
		Members:  members,
	}, nil
}

func (s *SectionService) AddMember(ctx context.Context, sectionID, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.AddMember(ctx, sectionID, userID)
}

func (s *SectionService) RemoveMember(ctx context.Context, sectionID, userID string) error {
	return s.repo.RemoveMember(ctx, sectionID, userID)
}
