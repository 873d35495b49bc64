package domain

import "errors"

var (
	// ErrForbidden covers every "authenticated but not allowed" outcome:
	// wrong role, non-owner mutation, unrecognized role claim.
	ErrForbidden = errors.New("access forbidden")
	// ErrSelfDelete guards the admin user-management path: an administrator
	// may never delete their own account through it.
	ErrSelfDelete = errors.New("cannot delete own administrator account")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidInput       = errors.New("invalid input")

	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrSectionExists   = errors.New("section already exists")
	ErrEntryNotFound   = errors.New("wellness entry not found")
)
