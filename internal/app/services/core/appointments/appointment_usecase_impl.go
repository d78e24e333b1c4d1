package appointments

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientUsecase        contracts.PatientUsecase
	PermissionChecker     contracts.PermissionChecker
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientUsecase contracts.PatientUsecase,
	permissionChecker contracts.PermissionChecker,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			PatientUsecase:        patientUsecase,
			PermissionChecker:     permissionChecker,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// Create books an appointment. Manual entries are staff-only walk-ins with no
// patient record; the patient id is the MANUAL-ENTRY sentinel.
func (uc *appointmentUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceAppointments, constvars.ActionCreate)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment := &models.Appointment{
		DoctorID:    request.DoctorID,
		DoctorName:  request.DoctorName,
		Date:        date,
		Time:        request.Time,
		Purpose:     request.Purpose,
		Notes:       request.Notes,
		Status:      request.Status,
		ManualEntry: request.ManualEntry,
		CreatedBy:   actor.UserID,
	}
	if appointment.Status == "" {
		appointment.Status = constvars.AppointmentStatusScheduled
	}
	if actor.Role == constvars.RoleDoctor && appointment.DoctorID == "" {
		appointment.DoctorID = actor.UserID
		appointment.DoctorName = actor.Name
	}

	if request.ManualEntry {
		if !access.IsStaff(actor.Role) {
			return nil, exceptions.ErrManualEntryNotAllowed(nil)
		}
		if request.PatientName == "" {
			return nil, exceptions.ErrClientCustomMessage(nil, "patientname is required for manual entries")
		}
		appointment.PatientID = constvars.ManualEntryPatientID
		appointment.PatientName = request.PatientName
	} else {
		patientID := request.PatientID
		if patientID == "" && actor.Role == constvars.RolePatient {
			patientID = actor.PatientID
		}
		if patientID == "" {
			return nil, exceptions.ErrClientCustomMessage(nil, "patientid is required")
		}

		patient, err := uc.PatientUsecase.Authorize(ctx, actor, patientID)
		if err != nil {
			return nil, err
		}
		appointment.PatientID = patient.ID
		appointment.PatientName = patient.Name
	}

	err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointment.ID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, actor *models.Actor, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)

	appointment, err := uc.loadAuthorized(ctx, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

// FindAll lists across patients for staff. Patient actors only ever see their
// own records whatever patientId they ask for.
func (uc *appointmentUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if actor == nil {
		return nil, nil, exceptions.ErrMissingActor(nil)
	}
	if actor.Role == constvars.RolePatient {
		if actor.PatientID == "" {
			return []responses.Appointment{}, utils.BuildPagination(0, query.Page, query.Limit), nil
		}
		query.PatientID = actor.PatientID
	}

	return uc.list(ctx, query)
}

func (uc *appointmentUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindByPatientID called",
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

func (uc *appointmentUsecase) FindToday(ctx context.Context, actor *models.Actor) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindToday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	patientID := ""
	if actor.Role == constvars.RolePatient {
		if actor.PatientID == "" {
			return []responses.Appointment{}, nil
		}
		patientID = actor.PatientID
	}

	appointments, err := uc.AppointmentRepository.FindByDay(ctx, utils.Today(), patientID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindToday error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointment.ConvertIntoResponse())
	}

	uc.Log.Info("appointmentUsecase.FindToday succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)

	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	_, err := uc.loadAuthorized(ctx, actor, appointmentID)
	if err != nil {
		return nil, err
	}

	fields, err := buildAppointmentPatch(request)
	if err != nil {
		return nil, err
	}

	updated, err := uc.AppointmentRepository.Update(ctx, appointmentID, fields)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceAppointments)
	}

	response := updated.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, actor *models.Actor, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)

	_, err := uc.loadAuthorized(ctx, actor, appointmentID)
	if err != nil {
		return err
	}

	err = uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Delete error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("appointmentUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// loadAuthorized fetches the appointment and applies the ownership rule
// through its patient. Staff skip the patient lookup so manual entries stay
// reachable.
func (uc *appointmentUsecase) loadAuthorized(ctx context.Context, actor *models.Actor, appointmentID string) (*models.Appointment, error) {
	if actor == nil {
		return nil, exceptions.ErrMissingActor(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if access.IsStaff(actor.Role) {
		if appointment == nil {
			return nil, exceptions.ErrNotFound(nil, constvars.ResourceAppointments)
		}
		return appointment, nil
	}

	if appointment == nil {
		return nil, exceptions.ErrForbidden(nil)
	}
	_, err = uc.PatientUsecase.Authorize(ctx, actor, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) list(ctx context.Context, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)

	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("appointmentUsecase.list error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointment.ConvertIntoResponse())
	}

	uc.Log.Info("appointmentUsecase.list succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, total),
	)
	return response, utils.BuildPagination(total, query.Page, query.Limit), nil
}

func buildAppointmentPatch(request *requests.UpdateAppointment) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if request.DoctorID != nil {
		fields["doctorId"] = *request.DoctorID
	}
	if request.DoctorName != nil {
		fields["doctorName"] = *request.DoctorName
	}
	if request.Date != nil {
		date, err := utils.ParseDay(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		fields["date"] = date
	}
	if request.Time != nil {
		fields["time"] = *request.Time
	}
	if request.Purpose != nil {
		fields["purpose"] = *request.Purpose
	}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	if request.Status != nil {
		fields["status"] = *request.Status
	}
	return fields, nil
}
