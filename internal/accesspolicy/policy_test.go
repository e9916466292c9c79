package accesspolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		found bool
		want  Role
	}{
		{"no row means no role", "admin", false, RoleNone},
		{"admin passes through", "admin", true, RoleAdmin},
		{"user passes through", "user", true, RoleUser},
		{"blank role on existing row defaults to user", "", true, RoleUser},
		{"unknown tag passes through verbatim", "greeter", true, Role("greeter")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(tt.raw, tt.found))
		})
	}
}

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name string
		role Role
		req  Requirement
		want bool
	}{
		{"admin satisfies admin-only", RoleAdmin, AdminOnly(), true},
		{"user denied admin-only", RoleUser, AdminOnly(), false},
		{"none denied admin-only", RoleNone, AdminOnly(), false},
		{"user satisfies any-authenticated", RoleUser, AnyAuthenticated(), true},
		{"admin satisfies any-authenticated", RoleAdmin, AnyAuthenticated(), true},
		{"none denied any-authenticated", RoleNone, AnyAuthenticated(), false},
		{"exact role match", RoleUser, ExactRole(RoleUser), true},
		{"exact role mismatch", RoleAdmin, ExactRole(RoleUser), false},
		{"unknown tag denied admin-only", Role("greeter"), AdminOnly(), false},
		{"unknown tag satisfies any-authenticated", Role("greeter"), AnyAuthenticated(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorized(tt.role, tt.req))
		})
	}
}
