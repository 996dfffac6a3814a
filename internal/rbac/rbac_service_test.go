package rbac

import (
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/domain"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================
// Helper: Test Service
// =========================================

func newTestService(t *testing.T) Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer("")
	require.NoError(t, err)

	service, err := NewService(enforcer)
	require.NoError(t, err)
	return service
}

// =========================================
// TEST: Enforce + inheritance
// =========================================

func TestRBACService_Enforce(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		role, resource, action string
		allowed                bool
	}{
		{"EMPLOYEE", "leave", "create", true},
		{"EMPLOYEE", "leave", "approve", false},
		{"EMPLOYEE", "onboarding", "invite", false},
		{"HR", "leave", "create", true},
		{"HR", "leave", "approve", true},
		{"HR", "onboarding", "review", true},
		{"HR", "user", "change_role", false},
		{"ADMIN", "user", "change_role", true},
		{"ADMIN", "leave_balance", "reconcile", true},
		{"ADMIN", "holiday", "read", true},
		{"GUEST", "holiday", "read", false},
	}

	for _, tc := range cases {
		allowed, err := service.Enforce(domain.EnforceRequest{Role: tc.role, Resource: tc.resource, Action: tc.action})
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}

// =========================================
// TEST: Authorize with ownership
// =========================================

func TestRBACService_Authorize(t *testing.T) {
	service := newTestService(t)

	allowed, err := service.Authorize("EMPLOYEE", "u-1", "u-1", "user", "read")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = service.Authorize("EMPLOYEE", "u-1", "u-2", "user", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = service.Authorize("EMPLOYEE", "", "", "user", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = service.Authorize("HR", "u-1", "u-2", "user", "read")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

// =========================================
// TEST: Permissions
// =========================================

func TestRBACService_Permissions(t *testing.T) {
	service := newTestService(t)

	employee, err := service.Permissions("EMPLOYEE")
	require.NoError(t, err)
	hr, err := service.Permissions("HR")
	require.NoError(t, err)

	assert.Contains(t, employee, domain.PermissionResponse{Resource: "leave", Action: "create", Label: "Apply for leave"})
	assert.NotContains(t, employee, domain.PermissionResponse{Resource: "leave", Action: "approve", Label: "Approve or reject leave"})
	assert.Greater(t, len(hr), len(employee))
	assert.Contains(t, hr, domain.PermissionResponse{Resource: "leave", Action: "create", Label: "Apply for leave"})

	unknown, err := service.Permissions("GUEST")
	assert.NoError(t, err)
	assert.Empty(t, unknown)
}
