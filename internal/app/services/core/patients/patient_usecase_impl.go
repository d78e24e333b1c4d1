package patients

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
	"strings"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository      contracts.PatientRepository
	UserRepository         contracts.UserRepository
	AppointmentRepository  contracts.AppointmentRepository
	PrescriptionRepository contracts.PrescriptionRepository
	LabReportRepository    contracts.LabReportRepository
	DocumentRepository     contracts.DocumentRepository
	BlobStore              contracts.BlobStore
	PatientIDGenerator     contracts.PatientIDGenerator
	PermissionChecker      contracts.PermissionChecker
	EventPublisher         contracts.EventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	appointmentRepository contracts.AppointmentRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	labReportRepository contracts.LabReportRepository,
	documentRepository contracts.DocumentRepository,
	blobStore contracts.BlobStore,
	patientIDGenerator contracts.PatientIDGenerator,
	permissionChecker contracts.PermissionChecker,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository:      patientRepository,
			UserRepository:         userRepository,
			AppointmentRepository:  appointmentRepository,
			PrescriptionRepository: prescriptionRepository,
			LabReportRepository:    labReportRepository,
			DocumentRepository:     documentRepository,
			BlobStore:              blobStore,
			PatientIDGenerator:     patientIDGenerator,
			PermissionChecker:      permissionChecker,
			EventPublisher:         eventPublisher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return patientUsecaseInstance
}

// Register creates the patient profile and links it to a user account. A
// patient registers themself; staff register someone else by email, reusing
// an unlinked account or creating a new one.
func (uc *patientUsecase) Register(ctx context.Context, actor *models.Actor, request *requests.RegisterPatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourcePatients, constvars.ActionRegister)
	if err != nil {
		return nil, err
	}

	owner, isNewOwner, err := uc.resolveOwner(ctx, actor, request)
	if err != nil {
		uc.Log.Error("patientUsecase.Register error resolving owning user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if request.Name == "" {
		request.Name = owner.Name
	}
	if missing := missingDemographics(request); len(missing) > 0 {
		return nil, exceptions.ErrMissingDemographics(nil, strings.Join(missing, ", "))
	}

	patient := &models.Patient{
		UserID:           owner.ID,
		Name:             request.Name,
		Email:            owner.Email,
		Age:              *request.Age,
		Gender:           request.Gender,
		BloodGroup:       request.BloodGroup,
		Contact:          request.Contact,
		Address:          request.Address,
		EmergencyContact: request.EmergencyContact,
		Condition:        request.Condition,
		Allergies:        request.Allergies,
	}
	if patient.Allergies == nil {
		patient.Allergies = []string{}
	}

	err = uc.insertWithFreshID(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Register error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.linkOwner(ctx, owner, isNewOwner, patient.ID)
	if err != nil {
		uc.Log.Error("patientUsecase.Register error linking user, removing patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
		if deleteErr := uc.PatientRepository.DeleteByID(ctx, patient.ID); deleteErr != nil {
			uc.Log.Error("patientUsecase.Register error removing unlinked patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patient.ID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, actor *models.Actor, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Patient, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourcePatients, constvars.ActionList)
	if err != nil {
		return nil, nil, err
	}

	patients, total, err := uc.PatientRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		response = append(response, patient.ConvertIntoResponse())
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	return response, utils.BuildPagination(total, query.Page, query.Limit), nil
}

// Update is a merge patch: only fields present in the request are written.
func (uc *patientUsecase) Update(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	_, err := uc.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.PatientRepository.Update(ctx, patientID, buildPatientPatch(request))
	if err != nil {
		uc.Log.Error("patientUsecase.Update error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatients)
	}

	response := updated.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

// Delete cascades over every dependent collection, then the patient, then the
// linked user. A failing step stops the cascade; earlier steps stay applied.
// Blob deletions are best effort and only counted when they fail.
func (uc *patientUsecase) Delete(ctx context.Context, actor *models.Actor, patientID string) (*responses.DeletePatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourcePatients, constvars.ActionDelete)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatients)
	}

	result := &responses.DeletePatient{PatientID: patientID}

	result.DeletedAppointments, err = uc.AppointmentRepository.DeleteByPatientID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "appointments", err)
	}

	result.DeletedPrescriptions, err = uc.PrescriptionRepository.DeleteByPatientID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "prescriptions", err)
	}

	result.DeletedLabReports, err = uc.LabReportRepository.DeleteByPatientID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "lab_reports", err)
	}

	documents, err := uc.DocumentRepository.FindAllByPatientID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "documents", err)
	}
	for _, document := range documents {
		if blobErr := uc.BlobStore.Delete(ctx, document.Locator); blobErr != nil && !errors.Is(blobErr, contracts.ErrBlobNotFound) {
			result.OrphanedBlobs++
			uc.Log.Warn("patientUsecase.Delete failed to delete blob, continuing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDocumentIDKey, document.ID),
				zap.String(constvars.LoggingLocatorKey, document.Locator),
				zap.Error(blobErr),
			)
		}
	}
	result.DeletedDocuments, err = uc.DocumentRepository.DeleteByPatientID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "documents", err)
	}

	err = uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "patient", err)
	}

	result.DeletedUser, err = uc.removeLinkedUser(ctx, patient.UserID)
	if err != nil {
		return nil, uc.cascadeFailed(ctx, "user", err)
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, events.NewEvent(constvars.EventPatientDeleted, actor, patientID, map[string]interface{}{
		"deletedAppointments":  result.DeletedAppointments,
		"deletedPrescriptions": result.DeletedPrescriptions,
		"deletedLabReports":    result.DeletedLabReports,
		"deletedDocuments":     result.DeletedDocuments,
		"orphanedBlobs":        result.OrphanedBlobs,
	}))

	utils.LogBusinessEvent(uc.Log, "patient_deleted", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingActorIDKey, actor.UserID),
	)
	uc.Log.Info("patientUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return result, nil
}

// Authorize applies the ownership rule to one patient. Patient actors get a
// 403 for unknown identifiers too, so existence is not revealed.
func (uc *patientUsecase) Authorize(ctx context.Context, actor *models.Actor, patientID string) (*models.Patient, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Authorize error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	if patient == nil {
		if actor.Role == constvars.RolePatient {
			return nil, exceptions.ErrForbidden(nil)
		}
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatients)
	}

	if !access.CanAccess(actor.Role, actor.UserID, patient.UserID) {
		utils.LogSecurityEvent(uc.Log, "patient_access_denied", utils.GetRequestID(ctx), "medium",
			zap.String(constvars.LoggingActorIDKey, actor.UserID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrForbidden(nil)
	}
	return patient, nil
}

// resolveOwner returns the account the patient will belong to and whether it
// still has to be created.
func (uc *patientUsecase) resolveOwner(ctx context.Context, actor *models.Actor, request *requests.RegisterPatient) (*models.User, bool, error) {
	if actor.Role == constvars.RolePatient {
		user, err := uc.UserRepository.FindByID(ctx, actor.UserID)
		if err != nil {
			return nil, false, err
		}
		if user == nil {
			return nil, false, exceptions.ErrSessionInvalid(nil)
		}
		if user.PatientID != "" {
			return nil, false, exceptions.ErrPatientAlreadyRegistered(nil)
		}
		return user, false, nil
	}

	if request.Email == "" {
		return nil, false, exceptions.ErrPatientEmailRequired(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		if user.PatientID != "" || user.Role != constvars.RolePatient {
			return nil, false, exceptions.ErrUserAlreadyLinked(nil)
		}
		return user, false, nil
	}

	password := request.Password
	if password == "" {
		password, err = utils.GenerateRandomPassword(uc.InternalConfig.Patient.GeneratedPasswordLength)
		if err != nil {
			return nil, false, exceptions.ErrHashPassword(err)
		}
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, exceptions.ErrHashPassword(err)
	}

	// The account is written by linkOwner once the patient exists.
	return &models.User{
		ID:       utils.GenerateRecordID(),
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     constvars.RolePatient,
	}, true, nil
}

func (uc *patientUsecase) linkOwner(ctx context.Context, owner *models.User, isNew bool, patientID string) error {
	if isNew {
		owner.PatientID = patientID
		_, err := uc.UserRepository.CreateUser(ctx, owner)
		return err
	}

	linked, err := uc.UserRepository.LinkPatient(ctx, owner.ID, patientID)
	if err != nil {
		return err
	}
	if !linked {
		return exceptions.ErrUserAlreadyLinked(fmt.Errorf("user %s was linked concurrently", owner.ID))
	}
	return nil
}

// insertWithFreshID allocates identifiers from the counter until one inserts.
// A duplicate can only come from rows created outside the counter.
func (uc *patientUsecase) insertWithFreshID(ctx context.Context, patient *models.Patient) error {
	for attempt := 1; attempt <= constvars.PatientIDMaxInsertRetry; attempt++ {
		patientID, err := uc.PatientIDGenerator.Next(ctx)
		if err != nil {
			return err
		}
		patient.ID = patientID

		err = uc.PatientRepository.CreatePatient(ctx, patient)
		if err == nil {
			return nil
		}
		if !errors.Is(err, contracts.ErrDuplicatePatientID) {
			return err
		}
		uc.Log.Warn("patientUsecase.insertWithFreshID identifier taken, retrying",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingCountKey, attempt),
		)
	}
	return exceptions.ErrPatientIDExhausted(nil)
}

func (uc *patientUsecase) removeLinkedUser(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if user.Role != constvars.RolePatient {
		return false, uc.UserRepository.UnlinkPatient(ctx, userID)
	}
	err = uc.UserRepository.DeleteByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (uc *patientUsecase) cascadeFailed(ctx context.Context, step string, err error) error {
	uc.Log.Error("patientUsecase.Delete cascade aborted",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, step),
		zap.Error(err),
	)
	return err
}

func missingDemographics(request *requests.RegisterPatient) []string {
	var missing []string
	if request.Name == "" {
		missing = append(missing, "name")
	}
	if request.Age == nil {
		missing = append(missing, "age")
	}
	if request.Gender == "" {
		missing = append(missing, "gender")
	}
	if request.BloodGroup == "" {
		missing = append(missing, "bloodGroup")
	}
	if request.Contact == "" {
		missing = append(missing, "contact")
	}
	if request.Address == "" {
		missing = append(missing, "address")
	}
	if request.EmergencyContact == "" {
		missing = append(missing, "emergencyContact")
	}
	return missing
}

func buildPatientPatch(request *requests.UpdatePatient) map[string]interface{} {
	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Age != nil {
		fields["age"] = *request.Age
	}
	if request.Gender != nil {
		fields["gender"] = *request.Gender
	}
	if request.BloodGroup != nil {
		fields["bloodGroup"] = *request.BloodGroup
	}
	if request.Contact != nil {
		fields["contact"] = *request.Contact
	}
	if request.Address != nil {
		fields["address"] = *request.Address
	}
	if request.EmergencyContact != nil {
		fields["emergencyContact"] = *request.EmergencyContact
	}
	if request.Condition != nil {
		fields["condition"] = *request.Condition
	}
	if request.Allergies != nil {
		fields["allergies"] = *request.Allergies
	}
	return fields
}
