package rbac

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policyRule grants one role one action on one resource. The role set
// is closed, so the whole table is static and loaded once at startup.
type policyRule struct {
	Role     string
	Resource string
	Action   string
}

func defaultPolicies() []policyRule {
	var rules []policyRule

	// Admins manage everything.
	for _, resource := range []string{"department", "task", "user", "onboarding_task", "notification"} {
		for _, action := range []string{"create", "read", "update", "delete"} {
			rules = append(rules, policyRule{"ADMIN", resource, action})
		}
	}

	// Supervisors follow their people: read widely, tick tasks off.
	for _, resource := range []string{"department", "task", "user", "onboarding_task", "notification"} {
		rules = append(rules, policyRule{"SUPERVISOR", resource, "read"})
	}
	rules = append(rules, policyRule{"SUPERVISOR", "onboarding_task", "update"})

	// Onboarding users work their own checklist.
	for _, resource := range []string{"department", "task", "user", "onboarding_task"} {
		rules = append(rules, policyRule{"ONBOARDING", resource, "read"})
	}
	rules = append(rules, policyRule{"ONBOARDING", "onboarding_task", "update"})

	// Plain employees only browse the catalog.
	for _, resource := range []string{"department", "task"} {
		rules = append(rules, policyRule{"EMPLOYEE", resource, "read"})
	}

	return rules
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

func NewService() (Service, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	for _, rule := range defaultPolicies() {
		if _, err := enforcer.AddPolicy(rule.Role, rule.Resource, rule.Action); err != nil {
			return nil, fmt.Errorf("rbac policy %s/%s/%s: %w", rule.Role, rule.Resource, rule.Action, err)
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enforcer.Enforce(role, resource, action)
}
