package documents

import (
	"context"
	"errors"
	"net/http"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/contracts/mocks"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/core/prescriptions"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/app/services/shared/blobstore"
	"sehatnama-service/internal/app/services/shared/extraction"
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

var (
	patientActor = &models.Actor{UserID: "user-1", Role: constvars.RolePatient, Name: "Sara", PatientID: "P-1001"}
	doctorActor  = &models.Actor{UserID: "doc-1", Role: constvars.RoleDoctor, Name: "Dr. Rahman"}

	pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
)

type documentUsecaseDeps struct {
	documents     *mocks.DocumentRepository
	patients      *mocks.PatientUsecase
	prescriptions *mocks.PrescriptionUsecase
	labReports    *mocks.LabReportUsecase
	blobs         *mocks.BlobStore
	engine        *mocks.ExtractionEngine
	locker        *mocks.LockerService
	limiter       *mocks.ResourceLimiter
	publisher     *mocks.EventPublisher
}

func newTestDocumentUsecase(t *testing.T) (*documentUsecase, *documentUsecaseDeps) {
	checker, err := access.NewPermissionChecker(zap.NewNop())
	require.NoError(t, err)

	deps := &documentUsecaseDeps{
		documents:     new(mocks.DocumentRepository),
		patients:      new(mocks.PatientUsecase),
		prescriptions: new(mocks.PrescriptionUsecase),
		labReports:    new(mocks.LabReportUsecase),
		blobs:         new(mocks.BlobStore),
		engine:        new(mocks.ExtractionEngine),
		locker:        new(mocks.LockerService),
		limiter:       new(mocks.ResourceLimiter),
		publisher:     new(mocks.EventPublisher),
	}
	deps.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	internalConfig := &config.InternalConfig{}
	internalConfig.Document.MaxUploadSizeInMB = 10
	internalConfig.Document.ProcessRateLimit = 20
	internalConfig.Document.ProcessRateWindowInSeconds = 60
	internalConfig.Document.ProcessLockTTLInSeconds = 60

	return &documentUsecase{
		DocumentRepository:  deps.documents,
		PatientUsecase:      deps.patients,
		PrescriptionUsecase: deps.prescriptions,
		LabReportUsecase:    deps.labReports,
		BlobStore:           deps.blobs,
		ExtractionEngine:    deps.engine,
		LockService:         deps.locker,
		ResourceLimiter:     deps.limiter,
		EventPublisher:      deps.publisher,
		PermissionChecker:   checker,
		InternalConfig:      internalConfig,
		Log:                 zap.NewNop(),
	}, deps
}

func TestDocumentUsecase_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Blob And Metadata With Defaults", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.patients.On("Authorize", ctx, patientActor, "P-1001").Return(&models.Patient{ID: "P-1001", UserID: "user-1"}, nil)
		deps.blobs.On("Put", ctx, "P-1001", pdfContent, "scan.pdf", constvars.MIMEApplicationPDF).Return("P-1001/abc-scan.pdf", nil)
		deps.documents.On("CreateDocument", ctx, mock.MatchedBy(func(d *models.Document) bool {
			return d.Title == constvars.DocumentDefaultTitle && d.Type == constvars.DocumentTypeOther &&
				d.FileType == "pdf" && d.FileSize == int64(len(pdfContent)) && d.Locator == "P-1001/abc-scan.pdf" &&
				d.UploadedBy == "user-1" && !d.Processed
		})).Return(nil)

		document, err := uc.Upload(ctx, patientActor, "P-1001", &requests.UploadDocument{
			File: requests.UploadedFile{FileName: "scan.pdf", Content: pdfContent},
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEApplicationPDF, document.ContentType)
		assert.Equal(t, []string{}, document.Tags)
		deps.publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e models.DomainEvent) bool {
			return e.Name == constvars.EventDocumentUploaded
		}))
	})

	t.Run("Rejects Executable Without Side Effects", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.patients.On("Authorize", ctx, patientActor, "P-1001").Return(&models.Patient{ID: "P-1001", UserID: "user-1"}, nil)

		_, err := uc.Upload(ctx, patientActor, "P-1001", &requests.UploadDocument{
			File: requests.UploadedFile{FileName: "payload.exe", Content: []byte("MZ\x90\x00\x03\x00\x00\x00")},
		})

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		deps.blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.documents.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
		deps.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Disguised Content", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.patients.On("Authorize", ctx, patientActor, "P-1001").Return(&models.Patient{ID: "P-1001", UserID: "user-1"}, nil)

		_, err := uc.Upload(ctx, patientActor, "P-1001", &requests.UploadDocument{
			File: requests.UploadedFile{FileName: "scan.pdf", Content: []byte("MZ\x90\x00\x03\x00\x00\x00")},
		})

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		deps.blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Foreign Patient", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.patients.On("Authorize", ctx, patientActor, "P-1002").Return(nil, exceptions.ErrForbidden(nil))

		_, err := uc.Upload(ctx, patientActor, "P-1002", &requests.UploadDocument{
			File: requests.UploadedFile{FileName: "scan.pdf", Content: pdfContent},
		})

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
	})

	t.Run("Removes Blob When Metadata Insert Fails", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.patients.On("Authorize", ctx, patientActor, "P-1001").Return(&models.Patient{ID: "P-1001", UserID: "user-1"}, nil)
		deps.blobs.On("Put", ctx, "P-1001", pdfContent, "scan.pdf", constvars.MIMEApplicationPDF).Return("P-1001/abc-scan.pdf", nil)
		deps.documents.On("CreateDocument", ctx, mock.Anything).Return(exceptions.ErrMongoDBInsertDocument(errors.New("down")))
		deps.blobs.On("Delete", ctx, "P-1001/abc-scan.pdf").Return(nil)

		_, err := uc.Upload(ctx, patientActor, "P-1001", &requests.UploadDocument{
			File: requests.UploadedFile{FileName: "scan.pdf", Content: pdfContent},
		})

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		deps.blobs.AssertCalled(t, "Delete", ctx, "P-1001/abc-scan.pdf")
	})
}

func allowQuota(deps *documentUsecaseDeps) {
	deps.limiter.On("ApplyResourceLimiter", mock.Anything, mock.MatchedBy(func(in *contracts.ApplyResourceLimiterInput) bool {
		return in.LimiterGroupName == constvars.RateLimiterGroupDocumentProcess
	})).Return(&contracts.ApplyResourceLimiterOutput{Allowed: true}, nil)
}

func grantLock(deps *documentUsecaseDeps, documentID string) {
	key := "sehatnama:lock:document-process:" + documentID
	deps.locker.On("TryLock", mock.Anything, key, mock.Anything).Return(true, "lock-1", nil)
	deps.locker.On("Refresh", mock.Anything, key, "lock-1", mock.Anything).Return(nil).Maybe()
	deps.locker.On("Unlock", mock.Anything, key, "lock-1").Return(nil)
}

func TestDocumentUsecase_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("Prescription Document Is Idempotent", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		grantLock(deps, "doc-1")
		stored := &models.Document{ID: "doc-1", PatientID: "P-1001", Type: constvars.DocumentTypePrescription, Locator: "P-1001/rx.pdf", ContentType: constvars.MIMEApplicationPDF}
		deps.documents.On("FindByID", mock.Anything, "doc-1").Return(stored, nil)
		deps.blobs.On("Get", mock.Anything, "P-1001/rx.pdf").Return(pdfContent, nil)
		deps.engine.On("Extract", mock.Anything, pdfContent, constvars.MIMEApplicationPDF, constvars.DocumentTypePrescription).
			Return(models.Extracted(models.ExtractedFields{Medications: []models.Medication{{Name: "Pending review"}}}))
		deps.prescriptions.On("CreateFromExtraction", mock.Anything, doctorActor, stored, mock.Anything).
			Return(&responses.Prescription{ID: "rx-1", SourceDocumentID: "doc-1"}, nil).Once()
		deps.documents.On("MarkProcessed", mock.Anything, "doc-1", mock.Anything).Return(true, nil).
			Run(func(mock.Arguments) { stored.Processed = true })

		first, err := uc.Process(ctx, doctorActor, "doc-1")
		require.NoError(t, err)
		require.NotNil(t, first.CreatedPrescription)
		assert.Equal(t, "rx-1", first.CreatedPrescription.ID)
		assert.True(t, first.Document.Processed)
		assert.False(t, first.AlreadyProcessed)

		second, err := uc.Process(ctx, doctorActor, "doc-1")
		require.NoError(t, err)
		assert.True(t, second.AlreadyProcessed)
		assert.Nil(t, second.CreatedPrescription)
		deps.prescriptions.AssertNumberOfCalls(t, "CreateFromExtraction", 1)
		deps.engine.AssertNumberOfCalls(t, "Extract", 1)
	})

	t.Run("Lab Report Document With Placeholder Engine", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		store := blobstore.NewMemoryBlobStore()
		locator, err := store.Put(ctx, "P-1001", pdfContent, "lab.pdf", constvars.MIMEApplicationPDF)
		require.NoError(t, err)
		uc.BlobStore = store
		uc.ExtractionEngine = extraction.NewPlaceholderEngine()
		allowQuota(deps)
		grantLock(deps, "doc-2")
		stored := &models.Document{ID: "doc-2", PatientID: "P-1001", Type: constvars.DocumentTypeLabReport, Locator: locator}
		deps.documents.On("FindByID", mock.Anything, "doc-2").Return(stored, nil)
		deps.labReports.On("CreateFromExtraction", mock.Anything, doctorActor, stored, mock.Anything).
			Return(&responses.LabReport{ID: "lab-1"}, nil)
		deps.documents.On("MarkProcessed", mock.Anything, "doc-2", mock.Anything).Return(true, nil)

		result, err := uc.Process(ctx, doctorActor, "doc-2")

		require.NoError(t, err)
		assert.Equal(t, "lab-1", result.CreatedLabReport.ID)
		assert.Nil(t, result.CreatedPrescription)
	})

	t.Run("Doctor Note Creates No Record", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		grantLock(deps, "doc-3")
		stored := &models.Document{ID: "doc-3", PatientID: "P-1001", Type: constvars.DocumentTypeDoctorNote, Locator: "x"}
		deps.documents.On("FindByID", mock.Anything, "doc-3").Return(stored, nil)
		deps.blobs.On("Get", mock.Anything, "x").Return(pdfContent, nil)
		deps.engine.On("Extract", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(models.NotApplicable())
		deps.documents.On("MarkProcessed", mock.Anything, "doc-3", mock.Anything).Return(true, nil)

		result, err := uc.Process(ctx, doctorActor, "doc-3")

		require.NoError(t, err)
		assert.Equal(t, string(models.ExtractionNotApplicable), result.ExtractionOutcome)
		assert.Nil(t, result.CreatedPrescription)
		assert.Nil(t, result.CreatedLabReport)
	})

	t.Run("Failed Extraction Leaves Document Unprocessed", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		grantLock(deps, "doc-4")
		stored := &models.Document{ID: "doc-4", PatientID: "P-1001", Type: constvars.DocumentTypePrescription, Locator: "y"}
		deps.documents.On("FindByID", mock.Anything, "doc-4").Return(stored, nil)
		deps.blobs.On("Get", mock.Anything, "y").Return(pdfContent, nil)
		deps.engine.On("Extract", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(models.ExtractionFailure("unreadable scan"))

		_, err := uc.Process(ctx, doctorActor, "doc-4")

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		deps.documents.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
		deps.prescriptions.AssertNotCalled(t, "CreateFromExtraction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.locker.AssertCalled(t, "Unlock", mock.Anything, "sehatnama:lock:document-process:doc-4", "lock-1")
	})

	t.Run("Retry After Failed Mark Reuses Prescription", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		grantLock(deps, "doc-7")
		stored := &models.Document{ID: "doc-7", PatientID: "P-1001", Type: constvars.DocumentTypePrescription, Locator: "P-1001/rx.pdf", ContentType: constvars.MIMEApplicationPDF}
		deps.documents.On("FindByID", mock.Anything, "doc-7").Return(stored, nil)
		deps.blobs.On("Get", mock.Anything, "P-1001/rx.pdf").Return(pdfContent, nil)
		deps.engine.On("Extract", mock.Anything, pdfContent, constvars.MIMEApplicationPDF, constvars.DocumentTypePrescription).
			Return(models.Extracted(models.ExtractedFields{Medications: []models.Medication{{Name: "Pending review"}}}))
		deps.patients.On("Authorize", mock.Anything, doctorActor, "P-1001").Return(&models.Patient{ID: "P-1001", Name: "Sara"}, nil)

		prescriptionRepo := new(mocks.PrescriptionRepository)
		prescriptionRepo.On("FindBySourceDocumentID", mock.Anything, "doc-7").Return(nil, nil).Once()
		prescriptionRepo.On("CreatePrescription", mock.Anything, mock.Anything).Return(nil).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Prescription).ID = "rx-7" })
		prescriptionRepo.On("FindBySourceDocumentID", mock.Anything, "doc-7").
			Return(&models.Prescription{ID: "rx-7", PatientID: "P-1001", SourceDocumentID: "doc-7"}, nil)
		uc.PrescriptionUsecase = prescriptions.NewPrescriptionUsecase(prescriptionRepo, deps.patients, uc.PermissionChecker, zap.NewNop())

		deps.documents.On("MarkProcessed", mock.Anything, "doc-7", mock.Anything).Return(false, errors.New("mongo down")).Once()
		deps.documents.On("MarkProcessed", mock.Anything, "doc-7", mock.Anything).Return(true, nil)

		_, err := uc.Process(ctx, doctorActor, "doc-7")
		require.Error(t, err)

		retried, err := uc.Process(ctx, doctorActor, "doc-7")
		require.NoError(t, err)
		require.NotNil(t, retried.CreatedPrescription)
		assert.Equal(t, "rx-7", retried.CreatedPrescription.ID)
		assert.True(t, retried.Document.Processed)
		prescriptionRepo.AssertNumberOfCalls(t, "CreatePrescription", 1)
	})

	t.Run("Lost Lock Skips Record Creation", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		key := "sehatnama:lock:document-process:doc-6"
		deps.locker.On("TryLock", mock.Anything, key, mock.Anything).Return(true, "lock-1", nil)
		deps.locker.On("Refresh", mock.Anything, key, "lock-1", mock.Anything).Return(exceptions.ErrRedisUnlock(errors.New("lock not held")))
		deps.locker.On("Unlock", mock.Anything, key, "lock-1").Return(nil)
		stored := &models.Document{ID: "doc-6", PatientID: "P-1001", Type: constvars.DocumentTypePrescription, Locator: "z"}
		deps.documents.On("FindByID", mock.Anything, "doc-6").Return(stored, nil)
		deps.blobs.On("Get", mock.Anything, "z").Return(pdfContent, nil)
		deps.engine.On("Extract", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(models.Extracted(models.ExtractedFields{Medications: []models.Medication{{Name: "Pending review"}}}))

		_, err := uc.Process(ctx, doctorActor, "doc-6")

		assert.Equal(t, http.StatusConflict, exceptions.StatusCode(err))
		deps.prescriptions.AssertNotCalled(t, "CreateFromExtraction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.documents.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent Processing Conflicts", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		allowQuota(deps)
		deps.documents.On("FindByID", mock.Anything, "doc-5").Return(&models.Document{ID: "doc-5"}, nil)
		deps.locker.On("TryLock", mock.Anything, "sehatnama:lock:document-process:doc-5", mock.Anything).Return(false, "", nil)

		_, err := uc.Process(ctx, doctorActor, "doc-5")

		assert.Equal(t, http.StatusConflict, exceptions.StatusCode(err))
		deps.engine.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Quota Exceeded", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).Return(&contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: 30}, nil)

		_, err := uc.Process(ctx, doctorActor, "doc-1")

		assert.Equal(t, http.StatusTooManyRequests, exceptions.StatusCode(err))
		deps.documents.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Patients Cannot Process", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)

		_, err := uc.Process(ctx, patientActor, "doc-1")

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
		deps.limiter.AssertNotCalled(t, "ApplyResourceLimiter", mock.Anything, mock.Anything)
	})
}

func TestDocumentUsecase_Remove(t *testing.T) {
	ctx := context.Background()
	uploaded := &models.Document{ID: "doc-1", PatientID: "P-1001", UploadedBy: "user-1", Locator: "P-1001/a.pdf"}

	t.Run("Uploader Removes Even When Blob Delete Fails", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.documents.On("FindByID", ctx, "doc-1").Return(uploaded, nil)
		deps.blobs.On("Delete", ctx, "P-1001/a.pdf").Return(errors.New("unreachable"))
		deps.documents.On("DeleteByID", ctx, "doc-1").Return(nil)

		err := uc.Remove(ctx, patientActor, "doc-1")

		require.NoError(t, err)
		deps.documents.AssertCalled(t, "DeleteByID", ctx, "doc-1")
	})

	t.Run("Other Patient Forbidden", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.documents.On("FindByID", ctx, "doc-1").Return(uploaded, nil)

		err := uc.Remove(ctx, &models.Actor{UserID: "user-2", Role: constvars.RolePatient}, "doc-1")

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCode(err))
		deps.blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Doctor Removes Any", func(t *testing.T) {
		uc, deps := newTestDocumentUsecase(t)
		deps.documents.On("FindByID", ctx, "doc-1").Return(uploaded, nil)
		deps.blobs.On("Delete", ctx, "P-1001/a.pdf").Return(contracts.ErrBlobNotFound)
		deps.documents.On("DeleteByID", ctx, "doc-1").Return(nil)

		assert.NoError(t, uc.Remove(ctx, doctorActor, "doc-1"))
	})
}

func TestDocumentUsecase_Download(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestDocumentUsecase(t)
	deps.documents.On("FindByID", ctx, "doc-1").Return(&models.Document{ID: "doc-1", PatientID: "P-1001", FileName: "a.pdf", ContentType: constvars.MIMEApplicationPDF, Locator: "l-1"}, nil)
	deps.documents.On("FindByID", ctx, "doc-2").Return(&models.Document{ID: "doc-2", Locator: "gone"}, nil)
	deps.patients.On("Authorize", ctx, patientActor, "P-1001").Return(&models.Patient{ID: "P-1001"}, nil)
	deps.blobs.On("Get", ctx, "l-1").Return(pdfContent, nil)
	deps.blobs.On("Get", ctx, "gone").Return(nil, contracts.ErrBlobNotFound)

	file, err := uc.Download(ctx, patientActor, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, constvars.MIMEApplicationPDF, file.ContentType)
	assert.Equal(t, pdfContent, file.Content)

	_, err = uc.Download(ctx, doctorActor, "doc-2")
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCode(err))
}
