package documents

import (
	"context"
	"errors"
	"fmt"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/app/services/shared/events"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type documentUsecase struct {
	DocumentRepository  contracts.DocumentRepository
	PatientUsecase      contracts.PatientUsecase
	PrescriptionUsecase contracts.PrescriptionUsecase
	LabReportUsecase    contracts.LabReportUsecase
	BlobStore           contracts.BlobStore
	ExtractionEngine    contracts.ExtractionEngine
	LockService         contracts.LockerService
	ResourceLimiter     contracts.ResourceLimiter
	EventPublisher      contracts.EventPublisher
	PermissionChecker   contracts.PermissionChecker
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

func NewDocumentUsecase(
	documentRepository contracts.DocumentRepository,
	patientUsecase contracts.PatientUsecase,
	prescriptionUsecase contracts.PrescriptionUsecase,
	labReportUsecase contracts.LabReportUsecase,
	blobStore contracts.BlobStore,
	extractionEngine contracts.ExtractionEngine,
	lockService contracts.LockerService,
	resourceLimiter contracts.ResourceLimiter,
	eventPublisher contracts.EventPublisher,
	permissionChecker contracts.PermissionChecker,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		documentUsecaseInstance = &documentUsecase{
			DocumentRepository:  documentRepository,
			PatientUsecase:      patientUsecase,
			PrescriptionUsecase: prescriptionUsecase,
			LabReportUsecase:    labReportUsecase,
			BlobStore:           blobStore,
			ExtractionEngine:    extractionEngine,
			LockService:         lockService,
			ResourceLimiter:     resourceLimiter,
			EventPublisher:      eventPublisher,
			PermissionChecker:   permissionChecker,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return documentUsecaseInstance
}

// Upload validates the file before touching the blob store or the database,
// so a rejected upload leaves nothing behind.
func (uc *documentUsecase) Upload(ctx context.Context, actor *models.Actor, patientID string, request *requests.UploadDocument) (*responses.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceDocuments, constvars.ActionUpload)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	inspected, err := utils.InspectUpload(request.File.FileName, request.File.Content, uc.maxUploadSizeInBytes())
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "document_upload_rejected", requestID, "low",
			zap.String(constvars.LoggingActorIDKey, actor.UserID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	date, err := utils.ParseDayOrToday(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	document := &models.Document{
		ID:           utils.GenerateRecordID(),
		PatientID:    patient.ID,
		Title:        request.Title,
		Type:         request.Type,
		Date:         date,
		Description:  request.Description,
		FileName:     request.File.FileName,
		FileType:     inspected.Extension,
		ContentType:  inspected.ContentType,
		FileSize:     inspected.Size,
		UploadedBy:   actor.UserID,
		UploaderName: actor.Name,
		Tags:         request.Tags,
	}
	if document.Title == "" {
		document.Title = constvars.DocumentDefaultTitle
	}
	if document.Type == "" {
		document.Type = constvars.DocumentTypeOther
	}
	if document.Tags == nil {
		document.Tags = []string{}
	}

	document.Locator, err = uc.BlobStore.Put(ctx, patient.ID, request.File.Content, request.File.FileName, inspected.ContentType)
	if err != nil {
		uc.Log.Error("documentUsecase.Upload error storing blob",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.DocumentRepository.CreateDocument(ctx, document)
	if err != nil {
		uc.Log.Error("documentUsecase.Upload error inserting document, removing blob",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLocatorKey, document.Locator),
			zap.Error(err),
		)
		uc.deleteBlob(ctx, document)
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, events.NewEvent(constvars.EventDocumentUploaded, actor, patient.ID, map[string]interface{}{
		"documentId": document.ID,
		"type":       document.Type,
		"fileType":   document.FileType,
		"fileSize":   document.FileSize,
	}))

	response := document.ConvertIntoResponse()
	uc.Log.Info("documentUsecase.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, document.ID),
	)
	return &response, nil
}

func (uc *documentUsecase) FindByID(ctx context.Context, actor *models.Actor, documentID string) (*responses.Document, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	document, err := uc.loadReadable(ctx, actor, documentID)
	if err != nil {
		return nil, err
	}

	response := document.ConvertIntoResponse()
	uc.Log.Info("documentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *documentUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Document, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	_, err := uc.PatientUsecase.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, nil, err
	}

	documents, total, err := uc.DocumentRepository.FindByPatientID(ctx, patientID, query)
	if err != nil {
		uc.Log.Error("documentUsecase.FindByPatientID error fetching documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Document, 0, len(documents))
	for _, document := range documents {
		response = append(response, document.ConvertIntoResponse())
	}

	uc.Log.Info("documentUsecase.FindByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	return response, utils.BuildPagination(total, query.Page, query.Limit), nil
}

func (uc *documentUsecase) Download(ctx context.Context, actor *models.Actor, documentID string) (*responses.DocumentFile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.Download called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	document, err := uc.loadReadable(ctx, actor, documentID)
	if err != nil {
		return nil, err
	}

	content, err := uc.BlobStore.Get(ctx, document.Locator)
	if err != nil {
		if errors.Is(err, contracts.ErrBlobNotFound) {
			return nil, exceptions.ErrNotFound(err, "document file")
		}
		uc.Log.Error("documentUsecase.Download error reading blob",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLocatorKey, document.Locator),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("documentUsecase.Download succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(content)),
	)
	return &responses.DocumentFile{
		FileName:    document.FileName,
		ContentType: document.ContentType,
		Content:     content,
	}, nil
}

// Remove lets the uploader, a doctor or an admin delete a document. The blob
// is removed best effort; the metadata always goes.
func (uc *documentUsecase) Remove(ctx context.Context, actor *models.Actor, documentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.Remove called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	if actor == nil {
		return exceptions.ErrMissingActor(nil)
	}

	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		if access.IsStaff(actor.Role) {
			return exceptions.ErrNotFound(nil, constvars.ResourceDocuments)
		}
		return exceptions.ErrForbidden(nil)
	}
	if !access.CanAccess(actor.Role, actor.UserID, document.UploadedBy) {
		return exceptions.ErrForbidden(nil)
	}

	uc.deleteBlob(ctx, document)

	err = uc.DocumentRepository.DeleteByID(ctx, documentID)
	if err != nil {
		uc.Log.Error("documentUsecase.Remove error deleting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("documentUsecase.Remove succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)
	return nil
}

// Process runs extraction once per document. A per-document lock keeps
// concurrent calls out, the processed flag makes repeats no-ops, and a failed
// extraction leaves the document unprocessed so it can be retried.
func (uc *documentUsecase) Process(ctx context.Context, actor *models.Actor, documentID string) (*responses.ProcessDocument, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.Process called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceDocuments, constvars.ActionProcess)
	if err != nil {
		return nil, err
	}

	err = uc.applyQuota(ctx, actor)
	if err != nil {
		return nil, err
	}

	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceDocuments)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyDocumentProcessLock, documentID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.processLockTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDocumentBeingProcessed(nil)
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(context.Background(), lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("documentUsecase.Process failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	// Re-read under the lock: another holder may have finished in between.
	document, err = uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceDocuments)
	}
	if document.Processed {
		uc.Log.Info("documentUsecase.Process document already processed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
		)
		return &responses.ProcessDocument{
			Document:         document.ConvertIntoResponse(),
			AlreadyProcessed: true,
		}, nil
	}

	content, err := uc.BlobStore.Get(ctx, document.Locator)
	if err != nil {
		if errors.Is(err, contracts.ErrBlobNotFound) {
			return nil, exceptions.ErrNotFound(err, "document file")
		}
		return nil, err
	}

	result := uc.ExtractionEngine.Extract(ctx, content, document.ContentType, document.Type)
	response := &responses.ProcessDocument{ExtractionOutcome: string(result.Outcome)}

	switch result.Outcome {
	case models.ExtractionFailed:
		uc.Log.Error("documentUsecase.Process extraction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.String(constvars.LoggingOutcomeKey, result.Reason),
		)
		return nil, exceptions.ErrExtractionFailed(errors.New(result.Reason))
	case models.ExtractionExtracted:
		// extraction may outlive the lock ttl; a lost lock means someone else owns the record
		err = uc.LockService.Refresh(ctx, lockKey, lockValue, uc.processLockTTL())
		if err != nil {
			uc.Log.Error("documentUsecase.Process lost process lock during extraction",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDocumentIDKey, documentID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDocumentBeingProcessed(err)
		}
		err = uc.createRecord(ctx, actor, document, result.Fields, response)
		if err != nil {
			return nil, err
		}
	}

	processedAt := time.Now().UTC()
	marked, err := uc.DocumentRepository.MarkProcessed(ctx, documentID, processedAt)
	if err != nil {
		uc.Log.Error("documentUsecase.Process error marking document processed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !marked {
		uc.Log.Warn("documentUsecase.Process document was marked processed concurrently",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
		)
	}
	document.Processed = true
	document.ProcessedAt = &processedAt
	response.Document = document.ConvertIntoResponse()

	payload := map[string]interface{}{
		"documentId": documentID,
		"outcome":    response.ExtractionOutcome,
	}
	if response.CreatedPrescription != nil {
		payload["prescriptionId"] = response.CreatedPrescription.ID
	}
	if response.CreatedLabReport != nil {
		payload["labReportId"] = response.CreatedLabReport.ID
	}
	events.Emit(ctx, uc.EventPublisher, uc.Log, events.NewEvent(constvars.EventDocumentProcessed, actor, document.PatientID, payload))

	utils.LogBusinessEvent(uc.Log, "document_processed", requestID,
		zap.String(constvars.LoggingDocumentIDKey, documentID),
		zap.String(constvars.LoggingOutcomeKey, response.ExtractionOutcome),
	)
	uc.Log.Info("documentUsecase.Process succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)
	return response, nil
}

// createRecord synthesizes at most one clinical record from the extracted
// fields, chosen by the document type.
func (uc *documentUsecase) createRecord(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields, response *responses.ProcessDocument) error {
	if fields == nil {
		return nil
	}

	switch document.Type {
	case constvars.DocumentTypePrescription:
		prescription, err := uc.PrescriptionUsecase.CreateFromExtraction(ctx, actor, document, fields)
		if err != nil {
			return err
		}
		response.CreatedPrescription = prescription
	case constvars.DocumentTypeLabReport:
		labReport, err := uc.LabReportUsecase.CreateFromExtraction(ctx, actor, document, fields)
		if err != nil {
			return err
		}
		response.CreatedLabReport = labReport
	}
	return nil
}

func (uc *documentUsecase) applyQuota(ctx context.Context, actor *models.Actor) error {
	output, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      actor.UserID,
		LimiterGroupName:  constvars.RateLimiterGroupDocumentProcess,
		WindowDurationSec: uc.InternalConfig.Document.ProcessRateWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Document.ProcessRateLimit,
	})
	if err != nil {
		return err
	}
	if !output.Allowed {
		utils.LogSecurityEvent(uc.Log, "document_process_quota_exceeded", utils.GetRequestID(ctx), "low",
			zap.String(constvars.LoggingActorIDKey, actor.UserID),
			zap.Int("retry_after_seconds", output.RetryAfterSecs),
		)
		return exceptions.ErrTooManyRequests(nil)
	}
	return nil
}

func (uc *documentUsecase) loadReadable(ctx context.Context, actor *models.Actor, documentID string) (*models.Document, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if access.IsStaff(actor.Role) {
		if document == nil {
			return nil, exceptions.ErrNotFound(nil, constvars.ResourceDocuments)
		}
		return document, nil
	}

	if document == nil {
		return nil, exceptions.ErrForbidden(nil)
	}
	_, err = uc.PatientUsecase.Authorize(ctx, actor, document.PatientID)
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (uc *documentUsecase) deleteBlob(ctx context.Context, document *models.Document) {
	err := uc.BlobStore.Delete(ctx, document.Locator)
	if err != nil && !errors.Is(err, contracts.ErrBlobNotFound) {
		uc.Log.Warn("documentUsecase failed to delete blob",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDocumentIDKey, document.ID),
			zap.String(constvars.LoggingLocatorKey, document.Locator),
			zap.Error(err),
		)
	}
}

func (uc *documentUsecase) maxUploadSizeInBytes() int64 {
	if uc.InternalConfig.Document.MaxUploadSizeInMB > 0 {
		return uc.InternalConfig.Document.MaxUploadSizeInMB << 20
	}
	return constvars.DocumentMaxUploadSizeInBytes
}

func (uc *documentUsecase) processLockTTL() time.Duration {
	if uc.InternalConfig.Document.ProcessLockTTLInSeconds > 0 {
		return time.Duration(uc.InternalConfig.Document.ProcessLockTTLInSeconds) * time.Second
	}
	return time.Minute
}
