package access

import (
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/resources"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPermissionChecker(t *testing.T) {
	checker, err := NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)

	t.Run("Clinical Record Creation", func(t *testing.T) {
		assert.True(t, checker.IsAllowed(constvars.RoleDoctor, constvars.ResourcePrescriptions, constvars.ActionCreate))
		assert.False(t, checker.IsAllowed(constvars.RoleAdmin, constvars.ResourcePrescriptions, constvars.ActionCreate))
		assert.False(t, checker.IsAllowed(constvars.RolePatient, constvars.ResourceLabReports, constvars.ActionCreate))
		assert.True(t, checker.IsAllowed(constvars.RolePatient, constvars.ResourceAppointments, constvars.ActionCreate))
	})

	t.Run("Staff Only Operations", func(t *testing.T) {
		for _, role := range []string{constvars.RoleDoctor, constvars.RoleAdmin} {
			assert.True(t, checker.IsAllowed(role, constvars.ResourcePatients, constvars.ActionDelete), role)
			assert.True(t, checker.IsAllowed(role, constvars.ResourceDocuments, constvars.ActionProcess), role)
		}
		assert.False(t, checker.IsAllowed(constvars.RolePatient, constvars.ResourcePatients, constvars.ActionDelete))
		assert.False(t, checker.IsAllowed(constvars.RolePatient, constvars.ResourceDocuments, constvars.ActionProcess))
	})

	t.Run("Catalog Writes", func(t *testing.T) {
		assert.True(t, checker.IsAllowed(constvars.RoleAdmin, constvars.ResourceMedicines, constvars.ActionWrite))
		assert.False(t, checker.IsAllowed(constvars.RoleDoctor, constvars.ResourceHospitals, constvars.ActionWrite))
	})

	t.Run("EnsureAllowed", func(t *testing.T) {
		err := EnsureAllowed(checker, &models.Actor{UserID: "u-1", Role: constvars.RolePatient}, constvars.ResourcePatients, constvars.ActionDelete)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))

		err = EnsureAllowed(checker, nil, constvars.ResourcePatients, constvars.ActionDelete)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))

		assert.NoError(t, EnsureAllowed(checker, &models.Actor{UserID: "u-2", Role: constvars.RoleAdmin}, constvars.ResourceUsers, constvars.ActionCreate))
	})
}

func TestNewEnforcer(t *testing.T) {
	t.Run("Rejects Malformed Policy", func(t *testing.T) {
		_, err := NewEnforcer(resources.RBACModel, "p, doctor, patient")
		assert.Error(t, err)
	})

	t.Run("Ignores Comments And Blank Lines", func(t *testing.T) {
		enforcer, err := NewEnforcer(resources.RBACModel, "# staff\n\np, doctor, patient, list\n")
		require.NoError(t, err)

		allowed, err := enforcer.Enforce("doctor", "patient", "list")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})
}
