package hospitals

import (
	"context"
	"net/http"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHospitalUsecase(t *testing.T) (*hospitalUsecase, *mocks.HospitalRepository, *mocks.CatalogCache) {
	checker, err := access.NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)
	repo := new(mocks.HospitalRepository)
	catalogCache := new(mocks.CatalogCache)
	return &hospitalUsecase{
		HospitalRepository: repo,
		CatalogCache:       catalogCache,
		PermissionChecker:  checker,
		Log:                zap.NewNop(),
	}, repo, catalogCache
}

func TestHospitalUsecase(t *testing.T) {
	ctx := context.Background()
	adminActor := &models.Actor{UserID: "admin-1", Role: constvars.RoleAdmin}

	t.Run("List From Database Then Cache", func(t *testing.T) {
		uc, repo, catalogCache := newTestHospitalUsecase(t)
		query := &requests.ListQuery{Page: 2, Limit: 5}
		catalogCache.On("Get", ctx, constvars.CatalogHospitals, "p2:l5:q=", mock.Anything).Return(false, nil)
		repo.On("FindAll", ctx, query).Return([]models.Hospital{{ID: "h-6", Name: "RS Harapan"}}, int64(6), nil)
		catalogCache.On("Set", ctx, constvars.CatalogHospitals, "p2:l5:q=", mock.Anything).Return(nil)

		items, pagination, err := uc.FindAll(ctx, query)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{}, items[0].Specialties)
		assert.Equal(t, &responses.Pagination{Total: 6, Page: 2, Limit: 5, Pages: 2}, pagination)
	})

	t.Run("Patient Cannot Create", func(t *testing.T) {
		uc, _, _ := newTestHospitalUsecase(t)
		patient := &models.Actor{UserID: "user-1", Role: constvars.RolePatient}

		_, err := uc.Create(ctx, patient, &requests.CreateHospital{Name: "RS Harapan"})

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
	})

	t.Run("Update Replaces Specialties", func(t *testing.T) {
		uc, repo, catalogCache := newTestHospitalUsecase(t)
		specialties := []string{"Cardiology", "Pediatrics"}
		repo.On("Update", ctx, "h-1", map[string]interface{}{"specialties": specialties}).
			Return(&models.Hospital{ID: "h-1", Specialties: specialties}, nil)
		catalogCache.On("Invalidate", ctx, constvars.CatalogHospitals).Return(nil)

		response, err := uc.Update(ctx, adminActor, "h-1", &requests.UpdateHospital{Specialties: &specialties})

		require.NoError(t, err)
		assert.Equal(t, specialties, response.Specialties)
		catalogCache.AssertExpectations(t)
	})

	t.Run("Update Unknown", func(t *testing.T) {
		uc, repo, _ := newTestHospitalUsecase(t)
		beds := 20
		repo.On("Update", ctx, "missing", map[string]interface{}{"beds": beds}).Return(nil, nil)

		_, err := uc.Update(ctx, adminActor, "missing", &requests.UpdateHospital{Beds: &beds})

		assert.Equal(t, http.StatusNotFound, exceptions.StatusCode(err))
	})
}
