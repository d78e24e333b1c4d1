package timeline

import (
	"context"
	"fmt"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/utils"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type timelineUsecase struct {
	PatientUsecase         contracts.PatientUsecase
	AppointmentRepository  contracts.AppointmentRepository
	PrescriptionRepository contracts.PrescriptionRepository
	LabReportRepository    contracts.LabReportRepository
	DocumentRepository     contracts.DocumentRepository
	Log                    *zap.Logger
}

var (
	timelineUsecaseInstance contracts.TimelineUsecase
	onceTimelineUsecase     sync.Once
)

func NewTimelineUsecase(
	patientUsecase contracts.PatientUsecase,
	appointmentRepository contracts.AppointmentRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	labReportRepository contracts.LabReportRepository,
	documentRepository contracts.DocumentRepository,
	logger *zap.Logger,
) contracts.TimelineUsecase {
	onceTimelineUsecase.Do(func() {
		timelineUsecaseInstance = &timelineUsecase{
			PatientUsecase:         patientUsecase,
			AppointmentRepository:  appointmentRepository,
			PrescriptionRepository: prescriptionRepository,
			LabReportRepository:    labReportRepository,
			DocumentRepository:     documentRepository,
			Log:                    logger,
		}
	})
	return timelineUsecaseInstance
}

// BuildHistory merges the patient's appointments, prescriptions, lab reports
// and doctor notes into one list, newest first. A processed document and the
// record created from it are separate events and both appear.
func (uc *timelineUsecase) BuildHistory(ctx context.Context, actor *models.Actor, patientID string) ([]responses.TimelineEvent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("timelineUsecase.BuildHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := uc.PatientUsecase.Authorize(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	var (
		appointments  []models.Appointment
		prescriptions []models.Prescription
		labReports    []models.LabReport
		notes         []models.Document
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		appointments, err = uc.AppointmentRepository.FindAllByPatientID(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		prescriptions, err = uc.PrescriptionRepository.FindAllByPatientID(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		labReports, err = uc.LabReportRepository.FindAllByPatientID(groupCtx, patientID)
		return err
	})
	group.Go(func() (err error) {
		notes, err = uc.DocumentRepository.FindAllByPatientIDAndType(groupCtx, patientID, constvars.DocumentTypeDoctorNote)
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("timelineUsecase.BuildHistory error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	events := make([]responses.TimelineEvent, 0, len(appointments)+len(prescriptions)+len(labReports)+len(notes))
	for _, appointment := range appointments {
		events = append(events, appointmentEvent(appointment))
	}
	for _, prescription := range prescriptions {
		events = append(events, prescriptionEvent(prescription))
	}
	for _, labReport := range labReports {
		events = append(events, labReportEvent(labReport))
	}
	for _, note := range notes {
		events = append(events, doctorNoteEvent(note))
	}
	SortNewestFirst(events)

	uc.Log.Info("timelineUsecase.BuildHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(events)),
	)
	return events, nil
}

// SortNewestFirst orders by date, then display time, both descending.
// Dates are YYYY-MM-DD and times HH:MM, so string order is time order.
func SortNewestFirst(events []responses.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date > events[j].Date
		}
		return events[i].DisplayTime > events[j].DisplayTime
	})
}

func appointmentEvent(appointment models.Appointment) responses.TimelineEvent {
	displayTime := appointment.Time
	if displayTime == "" {
		displayTime = constvars.TimelineDefaultAppointmentTime
	}
	detail := appointment.Notes
	if detail == "" {
		detail = appointment.Purpose
	}
	return responses.TimelineEvent{
		ID:                   appointment.ID,
		Category:             constvars.TimelineCategoryAppointment,
		Date:                 utils.FormatDay(appointment.Date),
		DisplayTime:          displayTime,
		Title:                "Appointment: " + appointment.Purpose,
		AttributedDoctorName: doctorNameOrDefault(appointment.DoctorName),
		DetailText:           detail,
		Status:               appointment.Status,
	}
}

func prescriptionEvent(prescription models.Prescription) responses.TimelineEvent {
	title := "Prescription"
	if count := len(prescription.Medications); count > 0 {
		title = "Prescription: " + prescription.Medications[0].Name
		if count > 1 {
			title = fmt.Sprintf("%s +%d more", title, count-1)
		}
	}

	lines := make([]string, 0, len(prescription.Medications))
	for _, medication := range prescription.Medications {
		lines = append(lines, medicationLine(medication))
	}

	return responses.TimelineEvent{
		ID:                   prescription.ID,
		Category:             constvars.TimelineCategoryPrescription,
		Date:                 utils.FormatDay(prescription.Date),
		DisplayTime:          constvars.TimelineDefaultPrescriptionTime,
		Title:                title,
		AttributedDoctorName: doctorNameOrDefault(prescription.DoctorName),
		DetailText:           strings.Join(lines, "\n"),
		Status:               prescription.Status,
	}
}

func labReportEvent(labReport models.LabReport) responses.TimelineEvent {
	return responses.TimelineEvent{
		ID:                   labReport.ID,
		Category:             constvars.TimelineCategoryLabReport,
		Date:                 utils.FormatDay(labReport.Date),
		DisplayTime:          constvars.TimelineDefaultLabReportTime,
		Title:                "Lab Report: " + labReport.TestType,
		AttributedDoctorName: doctorNameOrDefault(labReport.DoctorName),
		DetailText:           labReport.LabName,
		Status:               labReport.Status,
	}
}

func doctorNoteEvent(document models.Document) responses.TimelineEvent {
	status := constvars.DocumentStatusUploaded
	if document.Processed {
		status = constvars.DocumentStatusProcessed
	}
	return responses.TimelineEvent{
		ID:                   document.ID,
		Category:             constvars.TimelineCategoryDoctorNote,
		Date:                 utils.FormatDay(document.Date),
		DisplayTime:          utils.ClockOf(document.CreatedAt),
		Title:                document.Title,
		AttributedDoctorName: doctorNameOrDefault(document.UploaderName),
		DetailText:           document.Description,
		Status:               status,
	}
}

func medicationLine(medication models.Medication) string {
	parts := []string{medication.Name}
	for _, part := range []string{medication.Dosage, medication.Frequency, medication.Duration} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " - ")
}

func doctorNameOrDefault(name string) string {
	if name == "" {
		return constvars.TimelineDefaultDoctorName
	}
	return name
}
