package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/core/authz"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

type stubUserService struct {
	deleteErr     error
	deletedID     string
	deletedBy     authz.Identity
	changeRoleErr error
}

func (s *stubUserService) Create(context.Context, ports.CreateUserInput) (*domain.User, error) {
	return &domain.User{ID: "u1"}, nil
}

func (s *stubUserService) GetByID(context.Context, string) (*domain.User, error) {
	return &domain.User{ID: "u1"}, nil
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubUserService) Update(context.Context, string, ports.UpdateUser) (*domain.User, error) {
	return &domain.User{ID: "u1"}, nil
}

func (s *stubUserService) ChangeRole(_ context.Context, id, _ string) (*domain.User, error) {
	if s.changeRoleErr != nil {
		return nil, s.changeRoleErr
	}
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) Delete(_ context.Context, actor authz.Identity, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedBy = actor
	s.deletedID = id
	return nil
}

func (s *stubUserService) ListArtists(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubUserService) ArtistProfile(context.Context, string) (*ports.ArtistProfile, error) {
	return &ports.ArtistProfile{}, nil
}

func (s *stubUserService) EnsureAdmin(context.Context, string, string) error { return nil }

func TestUserHandlerDelete_RequiresCascadeConfirmation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodDelete, "/v1/admin/users/u2", "")
	c.SetParamNames("id")
	c.SetParamValues("u2")
	c.Set("user_id", "a1")
	c.Set("role", "admin")

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirmation header, got %v", err)
	}
}

func TestUserHandlerDelete_ConfirmedCascade(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/admin/users/u2", "")
	c.Request().Header.Set("X-Confirm-Cascade", "true")
	c.SetParamNames("id")
	c.SetParamValues("u2")
	c.Set("user_id", "a1")
	c.Set("role", "admin")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if svc.deletedID != "u2" || svc.deletedBy.UserID != "a1" {
		t.Fatalf("service got id=%s actor=%s", svc.deletedID, svc.deletedBy.UserID)
	}
}

func TestUserHandlerDelete_SelfDeletePropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{deleteErr: domain.ErrSelfDelete})

	c, _ := newTestContext(t, http.MethodDelete, "/v1/admin/users/a1", "")
	c.Request().Header.Set("X-Confirm-Cascade", "true")
	c.SetParamNames("id")
	c.SetParamValues("a1")
	c.Set("user_id", "a1")
	c.Set("role", "admin")

	if err := h.Delete(c); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestUserHandlerChangeRole_InvalidRolePropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{changeRoleErr: domain.ErrInvalidRole})

	c, _ := newTestContext(t, http.MethodPut, "/v1/admin/users/u1/role", `{"role":"superadmin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.ChangeRole(c); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
