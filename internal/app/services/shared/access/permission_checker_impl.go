package access

import (
	"fmt"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/resources"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

type permissionChecker struct {
	enforcer *casbin.Enforcer
	Log      *zap.Logger
}

var (
	permissionCheckerInstance contracts.PermissionChecker
	permissionCheckerErr      error
	oncePermissionChecker     sync.Once
)

// NewPermissionChecker builds the capability enforcer from the embedded model and policy.
func NewPermissionChecker(logger *zap.Logger) (contracts.PermissionChecker, error) {
	oncePermissionChecker.Do(func() {
		enforcer, err := NewEnforcer(resources.RBACModel, resources.RBACPolicy)
		if err != nil {
			permissionCheckerErr = err
			return
		}
		permissionCheckerInstance = &permissionChecker{
			enforcer: enforcer,
			Log:      logger,
		}
	})
	return permissionCheckerInstance, permissionCheckerErr
}

// NewEnforcer loads a casbin model and a policy in CSV form ("p, role, resource, action").
func NewEnforcer(modelText, policyText string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for lineNumber, line := range strings.Split(policyText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) != 4 || parts[0] != "p" {
			return nil, fmt.Errorf("invalid policy line %d: %q", lineNumber+1, line)
		}

		if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
			return nil, err
		}
	}

	return enforcer, nil
}

func (p *permissionChecker) IsAllowed(role, resource, action string) bool {
	allowed, err := p.enforcer.Enforce(role, resource, action)
	if err != nil {
		p.Log.Error("permissionChecker.IsAllowed enforce failed",
			zap.String(constvars.LoggingActorRoleKey, role),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.String(constvars.LoggingActionKey, action),
			zap.Error(err),
		)
		return false
	}
	return allowed
}

// EnsureAllowed turns a capability denial into a 403.
func EnsureAllowed(checker contracts.PermissionChecker, actor *models.Actor, resource, action string) error {
	if actor == nil {
		return exceptions.ErrMissingActor(nil)
	}
	if !checker.IsAllowed(actor.Role, resource, action) {
		return exceptions.ErrForbidden(fmt.Errorf("%s may not %s %s", actor.Role, action, resource))
	}
	return nil
}
