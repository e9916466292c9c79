// Package accesspolicy holds the pure authorization decision logic. It knows
// nothing about HTTP, storage, or sessions; callers resolve a role elsewhere
// and ask this package whether it satisfies a requirement.
package accesspolicy

// Role is an opaque authorization tag. The two roles the application assigns
// are "admin" and "user", but unknown tags pass through ResolveRole verbatim
// so a future role added in storage degrades to deny-by-default rather than
// an error.
type Role string

const (
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ResolveRole maps a raw role value fetched from the allowed-user store to a
// Role. found reports whether an allowed-user row existed at all: no row means
// no role. A row whose role field is blank defaults to RoleUser, matching how
// accounts were historically provisioned before roles existed.
func ResolveRole(raw string, found bool) Role {
	if !found {
		return RoleNone
	}
	if raw == "" {
		return RoleUser
	}
	return Role(raw)
}

type requirementKind int

const (
	reqAnyAuthenticated requirementKind = iota
	reqExactRole
	reqAdminOnly
)

// Requirement describes what a page or operation demands of the caller.
type Requirement struct {
	kind requirementKind
	role Role
}

// AnyAuthenticated is satisfied by every role except RoleNone.
func AnyAuthenticated() Requirement {
	return Requirement{kind: reqAnyAuthenticated}
}

// ExactRole is satisfied only by exactly r.
func ExactRole(r Role) Requirement {
	return Requirement{kind: reqExactRole, role: r}
}

// AdminOnly is satisfied only by RoleAdmin.
func AdminOnly() Requirement {
	return Requirement{kind: reqAdminOnly}
}

// IsAuthorized reports whether role satisfies req. RoleNone is a valid input,
// not an error; it is denied by every requirement.
func IsAuthorized(role Role, req Requirement) bool {
	switch req.kind {
	case reqAnyAuthenticated:
		return role != RoleNone
	case reqExactRole:
		return role == req.role
	case reqAdminOnly:
		return role == RoleAdmin
	default:
		return false
	}
}
