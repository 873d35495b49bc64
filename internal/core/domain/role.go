package domain

// Role is the closed set of user roles. Anything outside the three
// enumerated values is rejected, never silently granted.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
