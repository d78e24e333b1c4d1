package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientUsecase         contracts.PatientUsecase
	PermissionChecker      contracts.PermissionChecker
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientUsecase contracts.PatientUsecase,
	permissionChecker contracts.PermissionChecker,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			PatientUsecase:         patientUsecase,
			PermissionChecker:      permissionChecker,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourcePrescriptions, constvars.ActionCreate)
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

	prescription := &models.Prescription{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    actor.UserID,
		DoctorName:  actor.Name,
		Date:        date,
		Medications: toMedicationModels(request.Medications),
		Notes:       request.Notes,
		Status:      request.Status,
	}
	if prescription.PatientName == "" {
		prescription.PatientName = request.PatientName
	}
	if prescription.Status == "" {
		prescription.Status = constvars.PrescriptionStatusActive
	}

	return uc.store(ctx, prescription)
}

// CreateFromExtraction writes the single prescription synthesized from a
// processed document. The processing actor is recorded as the doctor.
func (uc *prescriptionUsecase) CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.CreateFromExtraction called",
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

	medications := fields.Medications
	if medications == nil {
		medications = []models.Medication{}
	}

	prescription := &models.Prescription{
		PatientID:        patient.ID,
		PatientName:      patient.Name,
		DoctorID:         actor.UserID,
		DoctorName:       actor.Name,
		Date:             extractedDateOr(fields.Date, document),
		Medications:      medications,
		Notes:            fields.Notes,
		Status:           constvars.PrescriptionStatusActive,
		SourceDocumentID: document.ID,
	}

	created, err := uc.store(ctx, prescription)
	if errors.Is(err, contracts.ErrDuplicateSourceDocument) {
		return uc.derivedFrom(ctx, document.ID)
	}
	return created, err
}

// derivedFrom returns the prescription already created from documentID, if any.
// A retried processing run must not create a second one.
func (uc *prescriptionUsecase) derivedFrom(ctx context.Context, documentID string) (*responses.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindBySourceDocumentID(ctx, documentID)
	if err != nil || prescription == nil {
		return nil, err
	}
	uc.Log.Info("prescriptionUsecase.CreateFromExtraction reusing existing prescription",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
		zap.String(constvars.LoggingRecordIDKey, prescription.ID),
	)
	response := prescription.ConvertIntoResponse()
	return &response, nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, actor *models.Actor, prescriptionID string) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	prescription, err := uc.loadReadable(ctx, actor, prescriptionID)
	if err != nil {
		return nil, err
	}

	response := prescription.ConvertIntoResponse()
	uc.Log.Info("prescriptionUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if actor == nil {
		return nil, nil, exceptions.ErrMissingActor(nil)
	}
	if actor.Role == constvars.RolePatient {
		if actor.PatientID == "" {
			return []responses.Prescription{}, utils.BuildPagination(0, query.Page, query.Limit), nil
		}
		query.PatientID = actor.PatientID
	}

	return uc.list(ctx, query)
}

func (uc *prescriptionUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.FindByPatientID called",
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

func (uc *prescriptionUsecase) Update(ctx context.Context, actor *models.Actor, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	_, err := uc.loadManageable(ctx, actor, prescriptionID)
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
	if request.Medications != nil {
		fields["medications"] = toMedicationModels(*request.Medications)
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	if request.Status != nil {
		fields["status"] = *request.Status
	}

	updated, err := uc.PrescriptionRepository.Update(ctx, prescriptionID, fields)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Update error updating prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePrescriptions)
	}

	response := updated.ConvertIntoResponse()
	uc.Log.Info("prescriptionUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *prescriptionUsecase) Delete(ctx context.Context, actor *models.Actor, prescriptionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, prescriptionID),
	)

	_, err := uc.loadManageable(ctx, actor, prescriptionID)
	if err != nil {
		return err
	}

	err = uc.PrescriptionRepository.DeleteByID(ctx, prescriptionID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Delete error deleting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("prescriptionUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *prescriptionUsecase) store(ctx context.Context, prescription *models.Prescription) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)

	err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.store error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := prescription.ConvertIntoResponse()
	uc.Log.Info("prescriptionUsecase.store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, prescription.ID),
	)
	return &response, nil
}

func (uc *prescriptionUsecase) list(ctx context.Context, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)

	prescriptions, total, err := uc.PrescriptionRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.list error fetching prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		response = append(response, prescription.ConvertIntoResponse())
	}

	uc.Log.Info("prescriptionUsecase.list succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	return response, utils.BuildPagination(total, query.Page, query.Limit), nil
}

func (uc *prescriptionUsecase) loadReadable(ctx context.Context, actor *models.Actor, prescriptionID string) (*models.Prescription, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}

	if access.IsStaff(actor.Role) {
		if prescription == nil {
			return nil, exceptions.ErrNotFound(nil, constvars.ResourcePrescriptions)
		}
		return prescription, nil
	}

	if prescription == nil {
		return nil, exceptions.ErrForbidden(nil)
	}
	_, err = uc.PatientUsecase.Authorize(ctx, actor, prescription.PatientID)
	if err != nil {
		return nil, err
	}
	return prescription, nil
}

// loadManageable allows the issuing doctor or an admin.
func (uc *prescriptionUsecase) loadManageable(ctx context.Context, actor *models.Actor, prescriptionID string) (*models.Prescription, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}
	if !access.IsStaff(actor.Role) {
		return nil, exceptions.ErrForbidden(nil)
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePrescriptions)
	}
	if !access.CanManageIssued(actor.Role, actor.UserID, prescription.DoctorID) {
		return nil, exceptions.ErrForbidden(nil)
	}
	return prescription, nil
}

func toMedicationModels(medications []requests.Medication) []models.Medication {
	result := make([]models.Medication, len(medications))
	for i, medication := range medications {
		result[i] = models.Medication{
			Name:      medication.Name,
			Dosage:    medication.Dosage,
			Frequency: medication.Frequency,
			Duration:  medication.Duration,
		}
	}
	return result
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
