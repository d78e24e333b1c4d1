package labReports

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	patientActor = &models.Actor{UserID: "user-1", Role: constvars.RolePatient, PatientID: "P-1001"}
	doctorActor  = &models.Actor{UserID: "doc-1", Role: constvars.RoleDoctor, Name: "Dr. Rahman"}
)

func newTestLabReportUsecase(t *testing.T, repo *mocks.LabReportRepository, patients *mocks.PatientUsecase) *labReportUsecase {
	checker, err := access.NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)
	return &labReportUsecase{
		LabReportRepository: repo,
		PatientUsecase:      patients,
		PermissionChecker:   checker,
		Log:                 zap.NewNop(),
	}
}

func TestLabReportUsecase_FindAllPendingFirstPage(t *testing.T) {
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/lab-reports?status=Pending&page=1&limit=10", nil)
	query, err := utils.BuildListQuery(r)
	require.NoError(t, err)

	pending := make([]models.LabReport, 10)
	for i := range pending {
		pending[i] = models.LabReport{ID: fmt.Sprintf("lab-%d", i), Status: constvars.LabReportStatusPending}
	}

	repo := new(mocks.LabReportRepository)
	repo.On("FindAll", ctx, mock.MatchedBy(func(q *requests.ListQuery) bool {
		return q.Status == constvars.LabReportStatusPending && q.Page == 1 && q.Limit == 10 && q.Skip() == 0
	})).Return(pending, int64(23), nil)

	reports, pagination, err := newTestLabReportUsecase(t, repo, new(mocks.PatientUsecase)).FindAll(ctx, doctorActor, query)

	require.NoError(t, err)
	assert.Len(t, reports, 10)
	for _, report := range reports {
		assert.Equal(t, constvars.LabReportStatusPending, report.Status)
	}
	assert.Equal(t, 23, pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
}

func TestLabReportUsecase_Create(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.LabReportRepository)
	patients := new(mocks.PatientUsecase)
	patients.On("Authorize", ctx, doctorActor, "P-1001").Return(&models.Patient{ID: "P-1001", Name: "Sara"}, nil)
	repo.On("CreateLabReport", ctx, mock.MatchedBy(func(l *models.LabReport) bool {
		return l.Status == constvars.LabReportStatusPending && l.DoctorID == "doc-1" && l.TestType == "CBC" && len(l.Results) == 1
	})).Return(nil)

	report, err := newTestLabReportUsecase(t, repo, patients).Create(ctx, doctorActor, &requests.CreateLabReport{
		PatientID: "P-1001",
		TestType:  "CBC",
		LabName:   "Prodia",
		Date:      "2024-03-15",
		Results:   []requests.LabResult{{Test: "Hemoglobin", Value: "13.5", Unit: "g/dL", NormalRange: "12-16", Status: "Normal"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hemoglobin", report.Results[0].Test)

	_, err = newTestLabReportUsecase(t, new(mocks.LabReportRepository), new(mocks.PatientUsecase)).Create(ctx, patientActor, &requests.CreateLabReport{PatientID: "P-1001", TestType: "CBC"})
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
}

func TestLabReportUsecase_CreateFromExtraction(t *testing.T) {
	ctx := context.Background()
	document := &models.Document{ID: "doc-3", PatientID: "P-1001", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}
	fields := &models.ExtractedFields{Date: "2024-03-12", TestType: "Lipid Panel", LabName: "Prodia"}

	authorized := func() *mocks.PatientUsecase {
		patients := new(mocks.PatientUsecase)
		patients.On("Authorize", ctx, doctorActor, "P-1001").Return(&models.Patient{ID: "P-1001", Name: "Sara"}, nil)
		return patients
	}

	t.Run("First Run Creates Report", func(t *testing.T) {
		repo := new(mocks.LabReportRepository)
		repo.On("FindBySourceDocumentID", ctx, "doc-3").Return(nil, nil)
		repo.On("CreateLabReport", ctx, mock.Anything).Return(nil)

		report, err := newTestLabReportUsecase(t, repo, authorized()).CreateFromExtraction(ctx, doctorActor, document, fields)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-12", report.Date)
		assert.Equal(t, "doc-3", report.SourceDocumentID)
		assert.Equal(t, constvars.LabReportStatusPending, report.Status)
		assert.Empty(t, report.Results)
	})

	t.Run("Retry Reuses Existing Report", func(t *testing.T) {
		repo := new(mocks.LabReportRepository)
		repo.On("FindBySourceDocumentID", ctx, "doc-3").Return(&models.LabReport{ID: "lab-1", SourceDocumentID: "doc-3"}, nil)

		report, err := newTestLabReportUsecase(t, repo, authorized()).CreateFromExtraction(ctx, doctorActor, document, fields)

		require.NoError(t, err)
		assert.Equal(t, "lab-1", report.ID)
		repo.AssertNotCalled(t, "CreateLabReport", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent Insert Returns Winner", func(t *testing.T) {
		repo := new(mocks.LabReportRepository)
		repo.On("FindBySourceDocumentID", ctx, "doc-3").Return(nil, nil).Once()
		repo.On("CreateLabReport", ctx, mock.Anything).
			Return(exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: E11000", contracts.ErrDuplicateSourceDocument)))
		repo.On("FindBySourceDocumentID", ctx, "doc-3").Return(&models.LabReport{ID: "lab-1", SourceDocumentID: "doc-3"}, nil).Once()

		report, err := newTestLabReportUsecase(t, repo, authorized()).CreateFromExtraction(ctx, doctorActor, document, fields)

		require.NoError(t, err)
		assert.Equal(t, "lab-1", report.ID)
	})
}

func TestLabReportUsecase_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LabReportRepository)
	repo.On("FindByID", ctx, "lab-1").Return(&models.LabReport{ID: "lab-1", DoctorID: "doc-1"}, nil)
	repo.On("Update", ctx, "lab-1", map[string]interface{}{"labName": "Kimia Farma"}).
		Return(&models.LabReport{ID: "lab-1", LabName: "Kimia Farma"}, nil)
	labName := "Kimia Farma"

	report, err := newTestLabReportUsecase(t, repo, new(mocks.PatientUsecase)).Update(ctx, doctorActor, "lab-1", &requests.UpdateLabReport{LabName: &labName})

	require.NoError(t, err)
	assert.Equal(t, "Kimia Farma", report.LabName)

	_, err = newTestLabReportUsecase(t, repo, new(mocks.PatientUsecase)).Update(ctx, doctorActor, "lab-1", &requests.UpdateLabReport{})
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
}

func TestBuildLabReportFilter(t *testing.T) {
	filter := buildLabReportFilter(&requests.ListQuery{Status: constvars.LabReportStatusPending})
	assert.Equal(t, bson.M{"status": constvars.LabReportStatusPending}, filter)

	filter = buildLabReportFilter(&requests.ListQuery{Search: "cbc"})
	assert.Len(t, filter["$or"], 4)
}
