package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

func TestResolveError_DomainMappings(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"self delete", domain.ErrSelfDelete, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"artwork not found", domain.ErrArtworkNotFound, http.StatusNotFound},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound},
		{"section not found", domain.ErrSectionNotFound, http.StatusNotFound},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"section exists", domain.ErrSectionExists, http.StatusConflict},
		{"echo error passthrough", echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			code, _ := resolveError(tc.err, zerolog.Nop(), c)
			if code != tc.code {
				t.Fatalf("resolveError(%v) = %d, want %d", tc.err, code, tc.code)
			}
		})
	}
}

func TestResolveError_SelfDeleteKeepsDistinctMessage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, selfMsg := resolveError(domain.ErrSelfDelete, zerolog.Nop(), c)
	_, forbiddenMsg := resolveError(domain.ErrForbidden, zerolog.Nop(), c)
	if selfMsg == forbiddenMsg {
		t.Fatalf("self-delete should carry its own message, both were %q", selfMsg)
	}
}

func TestHTTPErrorHandler_WritesEnvelope(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(domain.ErrArtworkNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := rec.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected JSON envelope, got %q", body)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("mongo: connection reset by peer"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := rec.Body.String(); body == "" || strings.Contains(body, "connection reset") {
		t.Fatalf("internal detail leaked to the client: %q", body)
	}
}
