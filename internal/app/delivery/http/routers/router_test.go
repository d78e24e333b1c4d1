package routers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/delivery/http/controllers"
	"sehatnama-service/internal/app/delivery/http/middlewares"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerFixture struct {
	router             *chi.Mux
	authUsecase        *mocks.AuthUsecase
	labReportUsecase   *mocks.LabReportUsecase
	documentUsecase    *mocks.DocumentUsecase
	medicineUsecase    *mocks.MedicineUsecase
	appointmentUsecase *mocks.AppointmentUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "/api",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
		Document: config.AppDocument{
			MaxUploadSizeInMB:       10,
			RequestTimeoutInSeconds: 30,
		},
		Upload: config.AppUpload{
			RatePerMinute: 60,
			Burst:         10,
		},
	}

	f := &routerFixture{
		router:             chi.NewRouter(),
		authUsecase:        new(mocks.AuthUsecase),
		labReportUsecase:   new(mocks.LabReportUsecase),
		documentUsecase:    new(mocks.DocumentUsecase),
		medicineUsecase:    new(mocks.MedicineUsecase),
		appointmentUsecase: new(mocks.AppointmentUsecase),
	}

	SetupRoutes(
		f.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, f.authUsecase, internalConfig),
		middlewares.NewUploadRateLimiter(internalConfig.Upload.RatePerMinute, internalConfig.Upload.Burst, logger),
		controllers.NewAuthController(logger, f.authUsecase),
		controllers.NewUserController(logger, f.authUsecase),
		controllers.NewPatientController(logger, new(mocks.PatientUsecase), new(mocks.TimelineUsecase)),
		controllers.NewAppointmentController(logger, f.appointmentUsecase),
		controllers.NewPrescriptionController(logger, new(mocks.PrescriptionUsecase)),
		controllers.NewLabReportController(logger, f.labReportUsecase),
		controllers.NewDocumentController(logger, f.documentUsecase, internalConfig),
		controllers.NewMedicineController(logger, f.medicineUsecase),
		controllers.NewHospitalController(logger, new(mocks.HospitalUsecase)),
	)
	return f
}

func (f *routerFixture) authenticateAs(token string, actor *models.Actor) {
	f.authUsecase.On("ResolveActor", mock.Anything, token).Return(actor, nil)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	f := newRouterFixture()

	paths := []string{
		"/api/v1/patients",
		"/api/v1/appointments/today",
		"/api/v1/lab-reports",
		"/api/v1/medicines",
		"/api/v1/hospitals",
		"/api/v1/auth/me",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			f.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		})
	}
	f.authUsecase.AssertNotCalled(t, "ResolveActor", mock.Anything, mock.Anything)
}

func TestRouter_LoginIsPublic(t *testing.T) {
	f := newRouterFixture()
	f.authUsecase.On("Login", mock.Anything, &requests.LoginUser{Email: "admin@sehatnama.id", Password: "Secret#123"}).
		Return(&responses.LoginUser{AccessToken: "token-1", TokenType: "Bearer"}, nil)

	body := []byte(`{"email":"  admin@sehatnama.id ","password":"Secret#123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "token-1")
	f.authUsecase.AssertExpectations(t)
}

func TestRouter_LabReportListingPassesFilters(t *testing.T) {
	f := newRouterFixture()
	doctor := &models.Actor{UserID: "u-doc", Role: constvars.RoleDoctor, Name: "Dr. Sari"}
	f.authenticateAs("doctor-token", doctor)

	f.labReportUsecase.On("FindAll", mock.Anything, doctor, mock.MatchedBy(func(q *requests.ListQuery) bool {
		return q.Page == 2 && q.Limit == 5 && q.Status == constvars.LabReportStatusPending && q.Search == "lipid" &&
			q.From != nil && q.From.Format(constvars.DateLayout) == "2024-01-01"
	})).Return([]responses.LabReport{{ID: "lab-1", TestType: "Lipid Panel"}}, &responses.Pagination{Total: 6, Page: 2, Limit: 5, Pages: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lab-reports?page=2&limit=5&status=Pending&search=lipid&from=2024-01-01", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer doctor-token")
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Lipid Panel")
	f.labReportUsecase.AssertExpectations(t)
}

func TestRouter_LabReportListingRejectsInvertedRange(t *testing.T) {
	f := newRouterFixture()
	f.authenticateAs("doctor-token", &models.Actor{UserID: "u-doc", Role: constvars.RoleDoctor})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lab-reports?from=2024-02-01&to=2024-01-01", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer doctor-token")
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	f.labReportUsecase.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_DocumentUpload(t *testing.T) {
	newUpload := func(t *testing.T, fileName string, content []byte) *http.Request {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile(constvars.DocumentFormFileKey, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.WriteField("title", "Blood test"))
		require.NoError(t, writer.WriteField("type", constvars.DocumentTypeLabReport))
		require.NoError(t, writer.WriteField("tags", "blood, annual"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients/P-1001/documents", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer doctor-token")
		return req
	}
	doctor := &models.Actor{UserID: "u-doc", Role: constvars.RoleDoctor, Name: "Dr. Sari"}

	t.Run("Accepted Upload", func(t *testing.T) {
		f := newRouterFixture()
		f.authenticateAs("doctor-token", doctor)
		f.documentUsecase.On("Upload", mock.Anything, doctor, "P-1001", mock.MatchedBy(func(r *requests.UploadDocument) bool {
			return r.File.FileName == "report.pdf" && r.Title == "Blood test" && len(r.Tags) == 2
		})).Return(&responses.Document{ID: "doc-1", FileName: "report.pdf"}, nil)

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, newUpload(t, "report.pdf", []byte("%PDF-1.4 test")))

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.documentUsecase.AssertExpectations(t)
	})

	t.Run("Executable Rejected", func(t *testing.T) {
		f := newRouterFixture()
		f.authenticateAs("doctor-token", doctor)
		f.documentUsecase.On("Upload", mock.Anything, doctor, "P-1001", mock.MatchedBy(func(r *requests.UploadDocument) bool {
			return r.File.FileName == "payload.exe"
		})).Return(nil, exceptions.ErrInvalidFileExtension(errors.New("extension .exe")))

		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, newUpload(t, "payload.exe", []byte("MZ")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "file type is not allowed")
	})

	t.Run("Missing File Part", func(t *testing.T) {
		f := newRouterFixture()
		f.authenticateAs("doctor-token", doctor)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("title", "No file"))
		require.NoError(t, writer.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients/P-1001/documents", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer doctor-token")
		rr := httptest.NewRecorder()

		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.documentUsecase.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRouter_TodayRouteIsNotAnID(t *testing.T) {
	f := newRouterFixture()
	doctor := &models.Actor{UserID: "u-doc", Role: constvars.RoleDoctor}
	f.authenticateAs("doctor-token", doctor)
	f.appointmentUsecase.On("FindToday", mock.Anything, doctor).Return([]responses.Appointment{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/today", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer doctor-token")
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	f.appointmentUsecase.AssertExpectations(t)
	f.appointmentUsecase.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_OversizedJSONBodyRejected(t *testing.T) {
	f := newRouterFixture()
	f.authenticateAs("admin-token", &models.Actor{UserID: "u-admin", Role: constvars.RoleAdmin})

	body := bytes.Repeat([]byte("a"), 2<<20)
	payload := append([]byte(`{"name":"`), append(body, []byte(`"}`)...)...)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medicines", bytes.NewReader(payload))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer admin-token")
	rr := httptest.NewRecorder()

	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	f.medicineUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
