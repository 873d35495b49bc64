package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", 0, zerolog.Nop())
}

func TestRegister_AlwaysPlayer(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "alice", "hunter2hunter2", "Alice A")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RolePlayer {
		t.Fatalf("expected player role, got %q", user.Role)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash == "hunter2hunter2" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "hunter2hunter2", "Alice A"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "alice", "other-password", "Other Alice")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLogin_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "bob", "secret-password", "Bob B")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "bob", "secret-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	if claims["user_id"] != registered.ID {
		t.Fatalf("user_id claim = %v, want %s", claims["user_id"], registered.ID)
	}
	if claims["role"] != string(domain.RolePlayer) {
		t.Fatalf("role claim = %v, want player", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token has no expiry")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "carol", "right-password", "Carol C"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "carol", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUserReadsAsInvalidCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
