package rbac

import (
	"context"
	"strings"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"go-chms/internal/accesspolicy"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the full permission matrix. Admin inherits everything the user
// role can do and adds the management surfaces on top.
var policies = [][]string{
	{"user", "attendance", "read"},
	{"user", "attendance", "create"},
	{"user", "membership", "read"},
	{"user", "analytics", "read"},
	{"user", "reports", "export"},
	{"user", "logs", "read"},
	{"admin", "attendance", "delete"},
	{"admin", "membership", "create"},
	{"admin", "membership", "update"},
	{"admin", "users", "read"},
	{"admin", "users", "create"},
	{"admin", "users", "update"},
	{"admin", "users", "delete"},
}

// RoleSource resolves an email to its access-list role.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, bool, error)
}

type Service struct {
	enforcer *casbin.Enforcer
	source   RoleSource
}

func NewService(source RoleSource) (*Service, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	if _, err := enforcer.AddGroupingPolicy("admin", "user"); err != nil {
		return nil, err
	}

	return &Service{enforcer: enforcer, source: source}, nil
}

// ResolveRole looks the email up on the access list and maps what it finds
// through the role defaulting rules. The lookup happens on every request so
// a role change or removal takes effect immediately.
func (s *Service) ResolveRole(ctx context.Context, email string) (accesspolicy.Role, error) {
	raw, found, err := s.source.RoleByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return accesspolicy.RoleNone, err
	}
	return accesspolicy.ResolveRole(raw, found), nil
}

func (s *Service) Enforce(role accesspolicy.Role, resource, action string) (bool, error) {
	if role == accesspolicy.RoleNone {
		return false, nil
	}
	return s.enforcer.Enforce(string(role), resource, action)
}
