// Package authz holds the authorization rules every mutating operation
// composes: the role gate, the ownership enforcer, and the per-kind
// admin-override table. The rules are pure functions of the verified
// identity and the persisted record; transport concerns stay out.
package authz

import (
	"context"
	"errors"

	"github.com/angelb-studio/studio-api/internal/core/domain"
)

// Identity is the authenticated actor decoded from a verified credential.
// It travels down the request's call chain explicitly, never as ambient
// global state.
type Identity struct {
	UserID string
	Role   domain.Role
}

// Kind names a resource kind for the admin-override table.
type Kind string

const (
	KindArtwork  Kind = "artwork"
	KindPost     Kind = "post"
	KindSection  Kind = "section"
	KindUser     Kind = "user"
	KindWellness Kind = "wellness"
)

// adminManaged lists the kinds that expose admin content-management routes
// (mutate any record, no ownership check). Wellness entries are deliberately
// absent: they are owner-only, with no admin override anywhere.
var adminManaged = map[Kind]bool{
	KindArtwork: true,
	KindPost:    true,
	KindSection: true,
	KindUser:    true,
}

// AdminManaged reports whether kind has an admin content-management path.
func AdminManaged(kind Kind) bool {
	return adminManaged[kind]
}

// RequireRole allows the identity iff its role is in the allowed set.
// Unrecognized roles never match, so a bad claim is always a denial.
func RequireRole(id Identity, allowed ...domain.Role) error {
	for _, r := range allowed {
		if id.Role == r && id.Role.Valid() {
			return nil
		}
	}
	return domain.ErrForbidden
}

// OwnerLookup returns the persisted owner of a resource. Implementations
// must do a fresh read and return the kind's not-found sentinel when the
// resource is absent.
type OwnerLookup func(ctx context.Context, resourceID string) (ownerID string, err error)

// RequireOwner allows the identity iff it owns the resource, comparing
// against the persisted owner rather than anything client-supplied.
// A missing resource surfaces as its not-found error before any ownership
// comparison, so nonexistence is never disguised as a permission problem.
// There is no admin bypass here: admin content management is a separate
// code path gated by role, not a special case of ownership.
func RequireOwner(ctx context.Context, id Identity, lookup OwnerLookup, resourceID string) error {
	ownerID, err := lookup(ctx, resourceID)
	if err != nil {
		return err
	}
	if ownerID != id.UserID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireNotSelf rejects the delete-user call when the target is the acting
// administrator's own account. Evaluated after authentication and the role
// gate, before the delete executes.
func RequireNotSelf(id Identity, targetUserID string) error {
	if id.UserID == targetUserID {
		return domain.ErrSelfDelete
	}
	return nil
}

// IsSelfDelete reports whether err is the self-deletion guard firing. The
// guard maps to Forbidden at the boundary but keeps its own message.
func IsSelfDelete(err error) bool {
	return errors.Is(err, domain.ErrSelfDelete)
}
