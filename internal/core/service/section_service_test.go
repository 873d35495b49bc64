package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

func sectionFixture(t *testing.T) (*SectionService, *stubSectionRepo, *stubArtworkRepo, *stubUserRepo) {
	t.Helper()
	users := newStubUserRepo()
	sections := newStubSectionRepo()
	artworks := newStubArtworkRepo()
	posts := newStubPostRepo()
	return NewSectionService(sections, artworks, posts, users, zerolog.Nop()), sections, artworks, users
}

func TestSectionProfile_SlugThenIDFallback(t *testing.T) {
	svc, sections, _, _ := sectionFixture(t)

	withSlug, err := sections.Insert(context.Background(), &domain.Section{Name: "Paintings", Slug: "paintings"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	withoutSlug, err := sections.Insert(context.Background(), &domain.Section{Name: "Sketches"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	bySlug, err := svc.Profile(context.Background(), "paintings")
	if err != nil {
		t.Fatalf("profile by slug: %v", err)
	}
	if bySlug.Section.ID != withSlug.ID {
		t.Fatalf("slug lookup resolved wrong section")
	}

	byID, err := svc.Profile(context.Background(), withoutSlug.ID)
	if err != nil {
		t.Fatalf("profile by id: %v", err)
	}
	if byID.Section.ID != withoutSlug.ID {
		t.Fatalf("id fallback resolved wrong section")
	}

	_, err = svc.Profile(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestSectionProfile_AggregatesContentAndSkipsDeletedMembers(t *testing.T) {
	svc, sections, artworks, users := sectionFixture(t)
	users.add("u1", "alice", "Alice A", domain.RolePlayer)

	section, err := sections.Insert(context.Background(), &domain.Section{Name: "Gallery", Slug: "gallery"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	sections.AddMember(context.Background(), section.ID, "u1")
	sections.AddMember(context.Background(), section.ID, "deleted-user")

	artworks.Insert(context.Background(), &domain.Artwork{OwnerID: "u1", SectionID: section.ID, Title: "A", CreatedAt: time.Now().UTC()})
	artworks.Insert(context.Background(), &domain.Artwork{OwnerID: "u1", SectionID: "other", Title: "B", CreatedAt: time.Now().UTC()})

	profile, err := svc.Profile(context.Background(), "gallery")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if len(profile.Artworks) != 1 {
		t.Fatalf("expected only section-scoped artworks, got %d", len(profile.Artworks))
	}
	if len(profile.Members) != 1 || profile.Members[0].FullName != "Alice A" {
		t.Fatalf("member aggregation wrong: %+v", profile.Members)
	}
}

func TestSectionCreate_DuplicateName(t *testing.T) {
	svc, _, _, _ := sectionFixture(t)

	if _, err := svc.Create(context.Background(), ports.CreateSectionInput{Name: "Gallery"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(context.Background(), ports.CreateSectionInput{Name: "Gallery"})
	if !errors.Is(err, domain.ErrSectionExists) {
		t.Fatalf("expected ErrSectionExists, got %v", err)
	}
}

func TestSectionAddMember_UnknownUser(t *testing.T) {
	svc, sections, _, _ := sectionFixture(t)
	section, err := sections.Insert(context.Background(), &domain.Section{Name: "Gallery"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	err = svc.AddMember(context.Background(), section.ID, "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
