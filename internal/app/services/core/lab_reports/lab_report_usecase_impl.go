package labReports

import (
	"context"
	"errors"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type labReportUsecase struct {
	LabReportRepository contracts.LabReportRepository
	PatientUsecase         contracts.PatientUsecase
	PermissionChecker      contracts.PermissionChecker
	Log                    *zap.Logger
}

var (
	labReportUsecaseInstance contracts.LabReportUsecase
	onceLabReportUsecase     sync.Once
)

func NewLabReportUsecase(
	labReportRepository contracts.LabReportRepository,
	patientUsecase contracts.PatientUsecase,
	permissionChecker contracts.PermissionChecker,
	logger *zap.Logger,
) contracts.LabReportUsecase {
	onceLabReportUsecase.Do(func() {
		labReportUsecaseInstance = &labReportUsecase{
			LabReportRepository: labReportRepository,
			PatientUsecase:         patientUsecase,
			PermissionChecker:      permissionChecker,
			Log:                    logger,
		}
	})
	return labReportUsecaseInstance
}

func (uc *labReportUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateLabReport) (*responses.LabReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceLabReports, constvars.ActionCreate)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.Authorize(ctx, actor, request.PatientID)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDayOrToday(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	labReport := &models.LabReport{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    actor.UserID,
		DoctorName:  actor.Name,
		TestType:    request.TestType,
		LabName:     request.LabName,
		Date:        date,
		Results:     toLabResultModels(request.Results),
		Notes:       request.Notes,
		Status:      request.Status,
	}
	if labReport.PatientName == "" {
		labReport.PatientName = request.PatientName
	}
	if labReport.Status == "" {
		labReport.Status = constvars.LabReportStatusPending
	}

	return uc.store(ctx, labReport)
}

// CreateFromExtraction writes the single lab report synthesized from a
// processed document. The processing actor is recorded as the requesting doctor.
func (uc *labReportUsecase) CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.LabReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.CreateFromExtraction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, document.ID),
	)

	patient, err := uc.PatientUsecase.Authorize(ctx, actor, document.PatientID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.derivedFrom(ctx, document.ID)
	if err != nil || existing != nil {
		return existing, err
	}

	results := fields.Results
	if results == nil {
		results = []models.LabResult{}
	}

	labReport := &models.LabReport{
		PatientID:        patient.ID,
		PatientName:      patient.Name,
		DoctorID:         actor.UserID,
		DoctorName:       actor.Name,
		TestType:         fields.TestType,
		LabName:          fields.LabName,
		Date:             extractedDateOr(fields.Date, document),
		Results:          results,
		Notes:            fields.Notes,
		Status:           constvars.LabReportStatusPending,
		SourceDocumentID: document.ID,
	}

	created, err := uc.store(ctx, labReport)
	if errors.Is(err, contracts.ErrDuplicateSourceDocument) {
		return uc.derivedFrom(ctx, document.ID)
	}
	return created, err
}

// derivedFrom returns the lab report already created from documentID, if any.
// A retried processing run must not create a second one.
func (uc *labReportUsecase) derivedFrom(ctx context.Context, documentID string) (*responses.LabReport, error) {
	labReport, err := uc.LabReportRepository.FindBySourceDocumentID(ctx, documentID)
	if err != nil || labReport == nil {
		return nil, err
	}
	uc.Log.Info("labReportUsecase.CreateFromExtraction reusing existing lab report",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
		zap.String(constvars.LoggingRecordIDKey, labReport.ID),
	)
	response := labReport.ConvertIntoResponse()
	return &response, nil
}

func (uc *labReportUsecase) FindByID(ctx context.Context, actor *models.Actor, labReportID string) (*responses.LabReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, labReportID),
	)

	labReport, err := uc.loadReadable(ctx, actor, labReportID)
	if err != nil {
		return nil, err
	}

	response := labReport.ConvertIntoResponse()
	uc.Log.Info("labReportUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *labReportUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if actor == nil {
		return nil, nil, exceptions.ErrMissingActor(nil)
	}
	if actor.Role == constvars.RolePatient {
		if actor.PatientID == "" {
			return []responses.LabReport{}, utils.BuildPagination(0, query.Page, query.Limit), nil
		}
		query.PatientID = actor.PatientID
	}

	return uc.list(ctx, query)
}

func (uc *labReportUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := uc.PatientUsecase.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, nil, err
	}
	query.PatientID = patientID

	return uc.list(ctx, query)
}

func (uc *labReportUsecase) Update(ctx context.Context, actor *models.Actor, labReportID string, request *requests.UpdateLabReport) (*responses.LabReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, labReportID),
	)

	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	_, err := uc.loadManageable(ctx, actor, labReportID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if request.Date != nil {
		date, err := utils.ParseDay(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		fields["date"] = date
	}
	if request.TestType != nil {
		fields["testType"] = *request.TestType
	}
	if request.LabName != nil {
		fields["labName"] = *request.LabName
	}
	if request.Results != nil {
		fields["results"] = toLabResultModels(*request.Results)
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	if request.Status != nil {
		fields["status"] = *request.Status
	}

	updated, err := uc.LabReportRepository.Update(ctx, labReportID, fields)
	if err != nil {
		uc.Log.Error("labReportUsecase.Update error updating labReport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceLabReports)
	}

	response := updated.ConvertIntoResponse()
	uc.Log.Info("labReportUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *labReportUsecase) Delete(ctx context.Context, actor *models.Actor, labReportID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("labReportUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, labReportID),
	)

	_, err := uc.loadManageable(ctx, actor, labReportID)
	if err != nil {
		return err
	}

	err = uc.LabReportRepository.DeleteByID(ctx, labReportID)
	if err != nil {
		uc.Log.Error("labReportUsecase.Delete error deleting labReport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("labReportUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *labReportUsecase) store(ctx context.Context, labReport *models.LabReport) (*responses.LabReport, error) {
	requestID := utils.GetRequestID(ctx)

	err := uc.LabReportRepository.CreateLabReport(ctx, labReport)
	if err != nil {
		uc.Log.Error("labReportUsecase.store error inserting labReport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := labReport.ConvertIntoResponse()
	uc.Log.Info("labReportUsecase.store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, labReport.ID),
	)
	return &response, nil
}

func (uc *labReportUsecase) list(ctx context.Context, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)

	labReports, total, err := uc.LabReportRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("labReportUsecase.list error fetching lab reports",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.LabReport, 0, len(labReports))
	for _, labReport := range labReports {
		response = append(response, labReport.ConvertIntoResponse())
	}

	uc.Log.Info("labReportUsecase.list succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	return response, utils.BuildPagination(total, query.Page, query.Limit), nil
}

func (uc *labReportUsecase) loadReadable(ctx context.Context, actor *models.Actor, labReportID string) (*models.LabReport, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	labReport, err := uc.LabReportRepository.FindByID(ctx, labReportID)
	if err != nil {
		return nil, err
	}

	if access.IsStaff(actor.Role) {
		if labReport == nil {
			return nil, exceptions.ErrNotFound(nil, constvars.ResourceLabReports)
		}
		return labReport, nil
	}

	if labReport == nil {
		return nil, exceptions.ErrForbidden(nil)
	}
	_, err = uc.PatientUsecase.Authorize(ctx, actor, labReport.PatientID)
	if err != nil {
		return nil, err
	}
	return labReport, nil
}

// loadManageable allows the requesting doctor or an admin.
func (uc *labReportUsecase) loadManageable(ctx context.Context, actor *models.Actor, labReportID string) (*models.LabReport, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}
	if !access.IsStaff(actor.Role) {
		return nil, exceptions.ErrForbidden(nil)
	}

	labReport, err := uc.LabReportRepository.FindByID(ctx, labReportID)
	if err != nil {
		return nil, err
	}
	if labReport == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceLabReports)
	}
	if !access.CanManageIssued(actor.Role, actor.UserID, labReport.DoctorID) {
		return nil, exceptions.ErrForbidden(nil)
	}
	return labReport, nil
}

func toLabResultModels(results []requests.LabResult) []models.LabResult {
	converted := make([]models.LabResult, len(results))
	for i, result := range results {
		converted[i] = models.LabResult{
			Test:        result.Test,
			Value:       result.Value,
			Unit:        result.Unit,
			NormalRange: result.NormalRange,
			Status:      result.Status,
		}
	}
	return converted
}

// extractedDateOr prefers the date read from the document content and falls
// back to the document's own date.
func extractedDateOr(value string, document *models.Document) time.Time {
	if value != "" {
		if date, err := utils.ParseDay(value); err == nil {
			return date
		}
	}
	return document.Date
}
