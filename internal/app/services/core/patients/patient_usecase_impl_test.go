package patients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type patientUsecaseDeps struct {
	patients      *mocks.PatientRepository
	users         *mocks.UserRepository
	appointments  *mocks.AppointmentRepository
	prescriptions *mocks.PrescriptionRepository
	labReports    *mocks.LabReportRepository
	documents     *mocks.DocumentRepository
	blobs         *mocks.BlobStore
	ids           *mocks.PatientIDGenerator
	publisher     *mocks.EventPublisher
}

func newTestPatientUsecase(t *testing.T) (*patientUsecase, *patientUsecaseDeps) {
	checker, err := access.NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)

	deps := &patientUsecaseDeps{
		patients:      new(mocks.PatientRepository),
		users:         new(mocks.UserRepository),
		appointments:  new(mocks.AppointmentRepository),
		prescriptions: new(mocks.PrescriptionRepository),
		labReports:    new(mocks.LabReportRepository),
		documents:     new(mocks.DocumentRepository),
		blobs:         new(mocks.BlobStore),
		ids:           new(mocks.PatientIDGenerator),
		publisher:     new(mocks.EventPublisher),
	}
	deps.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	internalConfig := &config.InternalConfig{}
	internalConfig.Patient.GeneratedPasswordLength = 12

	return &patientUsecase{
		PatientRepository:      deps.patients,
		UserRepository:         deps.users,
		AppointmentRepository:  deps.appointments,
		PrescriptionRepository: deps.prescriptions,
		LabReportRepository:    deps.labReports,
		DocumentRepository:     deps.documents,
		BlobStore:              deps.blobs,
		PatientIDGenerator:     deps.ids,
		PermissionChecker:      checker,
		EventPublisher:         deps.publisher,
		InternalConfig:         internalConfig,
		Log:                    zap.NewNop(),
	}, deps
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func fullRegisterRequest() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Age:              intPtr(34),
		Gender:           "Female",
		BloodGroup:       "O+",
		Contact:          "+62 812 0000 0001",
		Address:          "Jl. Melati 4, Bandung",
		EmergencyContact: "Budi +62 812 0000 0002",
	}
}

var (
	patientActor = &models.Actor{UserID: "user-1", Role: constvars.RolePatient, Name: "Sara"}
	doctorActor  = &models.Actor{UserID: "doc-1", Role: constvars.RoleDoctor, Name: "Dr. Rahman"}
	adminActor   = &models.Actor{UserID: "admin-1", Role: constvars.RoleAdmin, Name: "Admin"}
)

func TestPatientUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Registers Self With First Identifier", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Name: "Sara", Email: "sara@example.com", Role: constvars.RolePatient}, nil)
		deps.ids.On("Next", ctx).Return("P-1001", nil).Once()
		deps.patients.On("CreatePatient", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			return p.ID == "P-1001" && p.UserID == "user-1" && p.Name == "Sara" && p.Age == 34
		})).Return(nil)
		deps.users.On("LinkPatient", ctx, "user-1", "P-1001").Return(true, nil)

		patient, err := uc.Register(ctx, patientActor, fullRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, "P-1001", patient.ID)
		assert.Equal(t, "sara@example.com", patient.Email)
		assert.Equal(t, []string{}, patient.Allergies)
		deps.users.AssertExpectations(t)
	})

	t.Run("Retries When Identifier Already Taken", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Name: "Sara", Role: constvars.RolePatient}, nil)
		deps.ids.On("Next", ctx).Return("P-1001", nil).Once()
		deps.ids.On("Next", ctx).Return("P-1002", nil).Once()
		duplicate := exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: E11000", contracts.ErrDuplicatePatientID))
		deps.patients.On("CreatePatient", ctx, mock.MatchedBy(func(p *models.Patient) bool { return p.ID == "P-1001" })).Return(duplicate).Once()
		deps.patients.On("CreatePatient", ctx, mock.MatchedBy(func(p *models.Patient) bool { return p.ID == "P-1002" })).Return(nil).Once()
		deps.users.On("LinkPatient", ctx, "user-1", "P-1002").Return(true, nil)

		patient, err := uc.Register(ctx, patientActor, fullRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, "P-1002", patient.ID)
		deps.ids.AssertNumberOfCalls(t, "Next", 2)
	})

	t.Run("Gives Up After Retry Budget", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Name: "Sara", Role: constvars.RolePatient}, nil)
		deps.ids.On("Next", ctx).Return("P-1001", nil)
		duplicate := exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: E11000", contracts.ErrDuplicatePatientID))
		deps.patients.On("CreatePatient", ctx, mock.Anything).Return(duplicate)

		_, err := uc.Register(ctx, patientActor, fullRegisterRequest())

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		deps.ids.AssertNumberOfCalls(t, "Next", constvars.PatientIDMaxInsertRetry)
		deps.users.AssertNotCalled(t, "LinkPatient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reports Every Missing Demographic", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Name: "Sara", Role: constvars.RolePatient}, nil)

		_, err := uc.Register(ctx, patientActor, &requests.RegisterPatient{Gender: "Female"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.ClientMessage, "age, bloodGroup, contact, address, emergencyContact")
		deps.ids.AssertNotCalled(t, "Next", mock.Anything)
	})

	t.Run("Patient Already Registered", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Role: constvars.RolePatient, PatientID: "P-1001"}, nil)

		_, err := uc.Register(ctx, patientActor, fullRegisterRequest())

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Staff Registers New Account By Email", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		request := fullRegisterRequest()
		request.Name = "Ayu"
		request.Email = "ayu@example.com"
		deps.users.On("FindByEmail", ctx, "ayu@example.com").Return(nil, nil)
		deps.ids.On("Next", ctx).Return("P-1007", nil)
		var ownerID string
		deps.patients.On("CreatePatient", ctx, mock.MatchedBy(func(p *models.Patient) bool {
			ownerID = p.UserID
			return p.UserID != ""
		})).Return(nil)
		deps.users.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == ownerID && u.PatientID == "P-1007" && u.Role == constvars.RolePatient && u.Password != ""
		})).Return("generated", nil)

		patient, err := uc.Register(ctx, doctorActor, request)

		require.NoError(t, err)
		assert.Equal(t, "P-1007", patient.ID)
		deps.users.AssertExpectations(t)
	})

	t.Run("Staff Must Provide Email", func(t *testing.T) {
		uc, _ := newTestPatientUsecase(t)
		request := fullRegisterRequest()
		request.Name = "Ayu"

		_, err := uc.Register(ctx, adminActor, request)

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Email Belongs To Linked Account", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		request := fullRegisterRequest()
		request.Email = "sara@example.com"
		deps.users.On("FindByEmail", ctx, "sara@example.com").Return(&models.User{ID: "user-1", Role: constvars.RolePatient, PatientID: "P-1001"}, nil)

		_, err := uc.Register(ctx, doctorActor, request)

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Removes Patient When Link Fails", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Name: "Sara", Role: constvars.RolePatient}, nil)
		deps.ids.On("Next", ctx).Return("P-1001", nil)
		deps.patients.On("CreatePatient", ctx, mock.Anything).Return(nil)
		deps.users.On("LinkPatient", ctx, "user-1", "P-1001").Return(false, nil)
		deps.patients.On("DeleteByID", ctx, "P-1001").Return(nil)

		_, err := uc.Register(ctx, patientActor, fullRegisterRequest())

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		deps.patients.AssertCalled(t, "DeleteByID", ctx, "P-1001")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		uc, _ := newTestPatientUsecase(t)

		_, err := uc.Register(ctx, nil, fullRegisterRequest())

		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	})
}

func TestPatientUsecase_Authorize(t *testing.T) {
	ctx := context.Background()
	owned := &models.Patient{ID: "P-1001", UserID: "user-1"}

	uc, deps := newTestPatientUsecase(t)
	deps.patients.On("FindByID", ctx, "P-1001").Return(owned, nil)
	deps.patients.On("FindByID", ctx, "P-9999").Return(nil, nil)

	patient, err := uc.Authorize(ctx, patientActor, "P-1001")
	require.NoError(t, err)
	assert.Equal(t, owned, patient)

	_, err = uc.Authorize(ctx, &models.Actor{UserID: "user-2", Role: constvars.RolePatient}, "P-1001")
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))

	_, err = uc.Authorize(ctx, patientActor, "P-9999")
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err), "patients cannot probe for existence")

	_, err = uc.Authorize(ctx, doctorActor, "P-9999")
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCode(err))

	_, err = uc.Authorize(ctx, doctorActor, "P-1001")
	assert.NoError(t, err)
}

func TestPatientUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	query := &requests.ListQuery{Page: 2, Limit: 10}

	uc, deps := newTestPatientUsecase(t)
	deps.patients.On("FindAll", ctx, query).Return([]models.Patient{{ID: "P-1011"}}, int64(11), nil)

	patients, pagination, err := uc.FindAll(ctx, doctorActor, query)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
	assert.Equal(t, 11, pagination.Total)

	_, _, err = uc.FindAll(ctx, patientActor, query)
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
}

func TestPatientUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes Only Present Fields", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-1001").Return(&models.Patient{ID: "P-1001", UserID: "user-1"}, nil)
		deps.patients.On("Update", ctx, "P-1001", map[string]interface{}{
			"contact":   "+62 811",
			"allergies": []string{"penicillin"},
		}).Return(&models.Patient{ID: "P-1001", UserID: "user-1", Name: "Sara", Contact: "+62 811", Allergies: []string{"penicillin"}}, nil)

		patient, err := uc.Update(ctx, patientActor, "P-1001", &requests.UpdatePatient{
			Contact:   strPtr("+62 811"),
			Allergies: &[]string{"penicillin"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Sara", patient.Name)
		assert.Equal(t, "+62 811", patient.Contact)
	})

	t.Run("Empty Patch", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)

		_, err := uc.Update(ctx, patientActor, "P-1001", &requests.UpdatePatient{})

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		deps.patients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Foreign Patient", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-1002").Return(&models.Patient{ID: "P-1002", UserID: "user-2"}, nil)

		_, err := uc.Update(ctx, patientActor, "P-1002", &requests.UpdatePatient{Name: strPtr("X")})

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
		deps.patients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPatientUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	patient := &models.Patient{ID: "P-1001", UserID: "user-1"}
	documents := []models.Document{
		{ID: "doc-1", Locator: "patients/P-1001/a.pdf"},
		{ID: "doc-2", Locator: "patients/P-1001/b.png"},
	}

	t.Run("Cascades Over Every Collection", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-1001").Return(patient, nil)
		deps.appointments.On("DeleteByPatientID", ctx, "P-1001").Return(int64(3), nil)
		deps.prescriptions.On("DeleteByPatientID", ctx, "P-1001").Return(int64(2), nil)
		deps.labReports.On("DeleteByPatientID", ctx, "P-1001").Return(int64(1), nil)
		deps.documents.On("FindAllByPatientID", ctx, "P-1001").Return(documents, nil)
		deps.blobs.On("Delete", ctx, "patients/P-1001/a.pdf").Return(nil)
		deps.blobs.On("Delete", ctx, "patients/P-1001/b.png").Return(errors.New("bucket unavailable"))
		deps.documents.On("DeleteByPatientID", ctx, "P-1001").Return(int64(2), nil)
		deps.patients.On("DeleteByID", ctx, "P-1001").Return(nil)
		deps.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Role: constvars.RolePatient}, nil)
		deps.users.On("DeleteByID", ctx, "user-1").Return(nil)

		result, err := uc.Delete(ctx, adminActor, "P-1001")

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.DeletedAppointments)
		assert.Equal(t, int64(2), result.DeletedPrescriptions)
		assert.Equal(t, int64(1), result.DeletedLabReports)
		assert.Equal(t, int64(2), result.DeletedDocuments)
		assert.Equal(t, 1, result.OrphanedBlobs)
		assert.True(t, result.DeletedUser)
		deps.publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e models.DomainEvent) bool {
			return e.Name == constvars.EventPatientDeleted && e.PatientID == "P-1001"
		}))
	})

	t.Run("Failure Leaves Earlier Steps Applied", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-1001").Return(patient, nil)
		deps.appointments.On("DeleteByPatientID", ctx, "P-1001").Return(int64(3), nil)
		deps.prescriptions.On("DeleteByPatientID", ctx, "P-1001").Return(int64(0), exceptions.ErrMongoDBDeleteDocument(errors.New("timeout")))

		_, err := uc.Delete(ctx, adminActor, "P-1001")

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		deps.appointments.AssertCalled(t, "DeleteByPatientID", ctx, "P-1001")
		deps.labReports.AssertNotCalled(t, "DeleteByPatientID", mock.Anything, mock.Anything)
		deps.patients.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
		deps.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Staff Account Is Unlinked Not Deleted", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-1002").Return(&models.Patient{ID: "P-1002", UserID: "doc-1"}, nil)
		deps.appointments.On("DeleteByPatientID", ctx, "P-1002").Return(int64(0), nil)
		deps.prescriptions.On("DeleteByPatientID", ctx, "P-1002").Return(int64(0), nil)
		deps.labReports.On("DeleteByPatientID", ctx, "P-1002").Return(int64(0), nil)
		deps.documents.On("FindAllByPatientID", ctx, "P-1002").Return([]models.Document{}, nil)
		deps.documents.On("DeleteByPatientID", ctx, "P-1002").Return(int64(0), nil)
		deps.patients.On("DeleteByID", ctx, "P-1002").Return(nil)
		deps.users.On("FindByID", ctx, "doc-1").Return(&models.User{ID: "doc-1", Role: constvars.RoleDoctor}, nil)
		deps.users.On("UnlinkPatient", ctx, "doc-1").Return(nil)

		result, err := uc.Delete(ctx, adminActor, "P-1002")

		require.NoError(t, err)
		assert.False(t, result.DeletedUser)
		deps.users.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Patients Cannot Delete", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)

		_, err := uc.Delete(ctx, patientActor, "P-1001")

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
		deps.patients.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		uc, deps := newTestPatientUsecase(t)
		deps.patients.On("FindByID", ctx, "P-9999").Return(nil, nil)

		_, err := uc.Delete(ctx, doctorActor, "P-9999")

		assert.Equal(t, http.StatusNotFound, exceptions.StatusCode(err))
	})
}
