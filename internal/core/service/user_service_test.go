package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

type userFixture struct {
	svc      *UserService
	users    *stubUserRepo
	artworks *stubArtworkRepo
	posts    *stubPostRepo
	wellness *stubWellnessRepo
	sections *stubSectionRepo
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		users:    newStubUserRepo(),
		artworks: newStubArtworkRepo(),
		posts:    newStubPostRepo(),
		wellness: newStubWellnessRepo(),
		sections: newStubSectionRepo(),
	}
	f.svc = NewUserService(f.users, f.artworks, f.posts, f.wellness, f.sections, zerolog.Nop())
	return f
}

func TestUserCreate_InvalidRoleRejectedBeforeStore(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Create(context.Background(), ports.CreateUserInput{
		FullName: "Eve E",
		Username: "eve",
		Password: "password-123",
		Role:     "superadmin",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if len(f.users.users) != 0 {
		t.Fatalf("invalid role reached the store")
	}
}

func TestChangeRole_InvalidValueLeavesRoleUnchanged(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("u1", "alice", "Alice A", domain.RolePlayer)

	_, err := f.svc.ChangeRole(context.Background(), "u1", "owner")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	stored, _ := f.users.FindByID(context.Background(), "u1")
	if stored.Role != domain.RolePlayer {
		t.Fatalf("role mutated by rejected change: %s", stored.Role)
	}
}

func TestChangeRole_Valid(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("u1", "alice", "Alice A", domain.RolePlayer)

	updated, err := f.svc.ChangeRole(context.Background(), "u1", "coach")
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if updated.Role != domain.RoleCoach {
		t.Fatalf("role = %s, want coach", updated.Role)
	}
}

func TestUserDelete_SelfDeleteRefused(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("a1", "admin", "The Admin", domain.RoleAdmin)

	actor := authz.Identity{UserID: "a1", Role: domain.RoleAdmin}
	err := f.svc.Delete(context.Background(), actor, "a1")
	if !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if _, err := f.users.FindByID(context.Background(), "a1"); err != nil {
		t.Fatalf("self-delete removed the account")
	}
}

func TestUserDelete_CascadesOwnedContent(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("a1", "admin", "The Admin", domain.RoleAdmin)
	target := f.users.add("u1", "alice", "Alice A", domain.RolePlayer)

	now := time.Now().UTC()
	f.artworks.Insert(context.Background(), &domain.Artwork{OwnerID: target.ID, Title: "One", CreatedAt: now})
	f.artworks.Insert(context.Background(), &domain.Artwork{OwnerID: "u2", Title: "Other", CreatedAt: now})
	f.posts.Insert(context.Background(), &domain.BlogPost{OwnerID: target.ID, Title: "Post", CreatedAt: now})
	f.wellness.Insert(context.Background(), &domain.WellnessEntry{OwnerID: target.ID, SessionType: domain.SessionPractice, CreatedAt: now})
	f.sections.Insert(context.Background(), &domain.Section{Name: "Gallery"})
	f.sections.AddMember(context.Background(), "s1", target.ID)

	actor := authz.Identity{UserID: "a1", Role: domain.RoleAdmin}
	if err := f.svc.Delete(context.Background(), actor, target.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.users.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
	remaining, _ := f.artworks.List(context.Background())
	if len(remaining) != 1 || remaining[0].OwnerID != "u2" {
		t.Fatalf("cascade missed artworks or deleted another owner's work")
	}
	posts, _ := f.posts.List(context.Background())
	if len(posts) != 0 {
		t.Fatalf("cascade missed posts")
	}
	entries, _ := f.wellness.ListAll(context.Background())
	if len(entries) != 0 {
		t.Fatalf("cascade missed wellness entries")
	}
	section, _ := f.sections.FindByID(context.Background(), "s1")
	for _, m := range section.MemberIDs {
		if m == target.ID {
			t.Fatalf("cascade missed section membership")
		}
	}
}

func TestUserDelete_RepeatedDeleteIsNotFound(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("a1", "admin", "The Admin", domain.RoleAdmin)
	f.users.add("u1", "alice", "Alice A", domain.RolePlayer)

	actor := authz.Identity{UserID: "a1", Role: domain.RoleAdmin}
	if err := f.svc.Delete(context.Background(), actor, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err := f.svc.Delete(context.Background(), actor, "u1")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEnsureAdmin_CreatesOnceOnly(t *testing.T) {
	f := newUserFixture(t)

	if err := f.svc.EnsureAdmin(context.Background(), "root", "bootstrap-pass"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	created, err := f.users.FindByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if created.Role != domain.RoleAdmin {
		t.Fatalf("bootstrap account role = %s", created.Role)
	}

	if err := f.svc.EnsureAdmin(context.Background(), "root", "bootstrap-pass"); err != nil {
		t.Fatalf("second ensure admin: %v", err)
	}
	if len(f.users.users) != 1 {
		t.Fatalf("expected a single admin account, got %d users", len(f.users.users))
	}
}

func TestListArtists_OnlyPlayers(t *testing.T) {
	f := newUserFixture(t)
	f.users.add("u1", "alice", "Alice A", domain.RolePlayer)
	f.users.add("u2", "coach", "Coach C", domain.RoleCoach)
	f.users.add("u3", "admin", "The Admin", domain.RoleAdmin)

	artists, err := f.svc.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("list artists: %v", err)
	}
	if len(artists) != 1 || artists[0].ID != "u1" {
		t.Fatalf("expected only the player account, got %d", len(artists))
	}
}
