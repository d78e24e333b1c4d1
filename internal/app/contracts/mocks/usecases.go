package mocks

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error) {
	args := m.Called(ctx, request)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.LoginUser)
	return login, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, actor *models.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *AuthUsecase) ResolveActor(ctx context.Context, token string) (*models.Actor, error) {
	args := m.Called(ctx, token)
	actor, _ := args.Get(0).(*models.Actor)
	return actor, args.Error(1)
}

func (m *AuthUsecase) Me(ctx context.Context, actor *models.Actor) (*responses.UserProfile, error) {
	args := m.Called(ctx, actor)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *AuthUsecase) CreateStaff(ctx context.Context, actor *models.Actor, request *requests.CreateStaff) (*responses.UserProfile, error) {
	args := m.Called(ctx, actor, request)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) Register(ctx context.Context, actor *models.Actor, request *requests.RegisterPatient) (*responses.Patient, error) {
	args := m.Called(ctx, actor, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) FindByID(ctx context.Context, actor *models.Actor, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, actor, patientID)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Patient, *responses.Pagination, error) {
	args := m.Called(ctx, actor, query)
	patients, _ := args.Get(0).([]responses.Patient)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return patients, pagination, args.Error(2)
}

func (m *PatientUsecase) Update(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, actor, patientID, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) Delete(ctx context.Context, actor *models.Actor, patientID string) (*responses.DeletePatient, error) {
	args := m.Called(ctx, actor, patientID)
	result, _ := args.Get(0).(*responses.DeletePatient)
	return result, args.Error(1)
}

func (m *PatientUsecase) Authorize(ctx context.Context, actor *models.Actor, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, actor, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

type PrescriptionUsecase struct {
	mock.Mock
}

func (m *PrescriptionUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreatePrescription) (*responses.Prescription, error) {
	args := m.Called(ctx, actor, request)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) FindByID(ctx context.Context, actor *models.Actor, prescriptionID string) (*responses.Prescription, error) {
	args := m.Called(ctx, actor, prescriptionID)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error) {
	args := m.Called(ctx, actor, query)
	prescriptions, _ := args.Get(0).([]responses.Prescription)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return prescriptions, pagination, args.Error(2)
}

func (m *PrescriptionUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error) {
	args := m.Called(ctx, actor, patientID, query)
	prescriptions, _ := args.Get(0).([]responses.Prescription)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return prescriptions, pagination, args.Error(2)
}

func (m *PrescriptionUsecase) Update(ctx context.Context, actor *models.Actor, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	args := m.Called(ctx, actor, prescriptionID, request)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) Delete(ctx context.Context, actor *models.Actor, prescriptionID string) error {
	args := m.Called(ctx, actor, prescriptionID)
	return args.Error(0)
}

func (m *PrescriptionUsecase) CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.Prescription, error) {
	args := m.Called(ctx, actor, document, fields)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

type LabReportUsecase struct {
	mock.Mock
}

func (m *LabReportUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateLabReport) (*responses.LabReport, error) {
	args := m.Called(ctx, actor, request)
	labReport, _ := args.Get(0).(*responses.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportUsecase) FindByID(ctx context.Context, actor *models.Actor, labReportID string) (*responses.LabReport, error) {
	args := m.Called(ctx, actor, labReportID)
	labReport, _ := args.Get(0).(*responses.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error) {
	args := m.Called(ctx, actor, query)
	labReports, _ := args.Get(0).([]responses.LabReport)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return labReports, pagination, args.Error(2)
}

func (m *LabReportUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error) {
	args := m.Called(ctx, actor, patientID, query)
	labReports, _ := args.Get(0).([]responses.LabReport)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return labReports, pagination, args.Error(2)
}

func (m *LabReportUsecase) Update(ctx context.Context, actor *models.Actor, labReportID string, request *requests.UpdateLabReport) (*responses.LabReport, error) {
	args := m.Called(ctx, actor, labReportID, request)
	labReport, _ := args.Get(0).(*responses.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportUsecase) Delete(ctx context.Context, actor *models.Actor, labReportID string) error {
	args := m.Called(ctx, actor, labReportID)
	return args.Error(0)
}

func (m *LabReportUsecase) CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.LabReport, error) {
	args := m.Called(ctx, actor, document, fields)
	labReport, _ := args.Get(0).(*responses.LabReport)
	return labReport, args.Error(1)
}

type DocumentUsecase struct {
	mock.Mock
}

func (m *DocumentUsecase) Upload(ctx context.Context, actor *models.Actor, patientID string, request *requests.UploadDocument) (*responses.Document, error) {
	args := m.Called(ctx, actor, patientID, request)
	document, _ := args.Get(0).(*responses.Document)
	return document, args.Error(1)
}

func (m *DocumentUsecase) FindByID(ctx context.Context, actor *models.Actor, documentID string) (*responses.Document, error) {
	args := m.Called(ctx, actor, documentID)
	document, _ := args.Get(0).(*responses.Document)
	return document, args.Error(1)
}

func (m *DocumentUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Document, *responses.Pagination, error) {
	args := m.Called(ctx, actor, patientID, query)
	documents, _ := args.Get(0).([]responses.Document)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return documents, pagination, args.Error(2)
}

func (m *DocumentUsecase) Download(ctx context.Context, actor *models.Actor, documentID string) (*responses.DocumentFile, error) {
	args := m.Called(ctx, actor, documentID)
	file, _ := args.Get(0).(*responses.DocumentFile)
	return file, args.Error(1)
}

func (m *DocumentUsecase) Remove(ctx context.Context, actor *models.Actor, documentID string) error {
	args := m.Called(ctx, actor, documentID)
	return args.Error(0)
}

func (m *DocumentUsecase) Process(ctx context.Context, actor *models.Actor, documentID string) (*responses.ProcessDocument, error) {
	args := m.Called(ctx, actor, documentID)
	result, _ := args.Get(0).(*responses.ProcessDocument)
	return result, args.Error(1)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, actor, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) FindByID(ctx context.Context, actor *models.Actor, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	args := m.Called(ctx, actor, query)
	appointments, _ := args.Get(0).([]responses.Appointment)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return appointments, pagination, args.Error(2)
}

func (m *AppointmentUsecase) FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error) {
	args := m.Called(ctx, actor, patientID, query)
	appointments, _ := args.Get(0).([]responses.Appointment)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return appointments, pagination, args.Error(2)
}

func (m *AppointmentUsecase) FindToday(ctx context.Context, actor *models.Actor) ([]responses.Appointment, error) {
	args := m.Called(ctx, actor)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentUsecase) Update(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) Delete(ctx context.Context, actor *models.Actor, appointmentID string) error {
	args := m.Called(ctx, actor, appointmentID)
	return args.Error(0)
}

type TimelineUsecase struct {
	mock.Mock
}

func (m *TimelineUsecase) BuildHistory(ctx context.Context, actor *models.Actor, patientID string) ([]responses.TimelineEvent, error) {
	args := m.Called(ctx, actor, patientID)
	events, _ := args.Get(0).([]responses.TimelineEvent)
	return events, args.Error(1)
}

type MedicineUsecase struct {
	mock.Mock
}

func (m *MedicineUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateMedicine) (*responses.Medicine, error) {
	args := m.Called(ctx, actor, request)
	medicine, _ := args.Get(0).(*responses.Medicine)
	return medicine, args.Error(1)
}

func (m *MedicineUsecase) FindByID(ctx context.Context, medicineID string) (*responses.Medicine, error) {
	args := m.Called(ctx, medicineID)
	medicine, _ := args.Get(0).(*responses.Medicine)
	return medicine, args.Error(1)
}

func (m *MedicineUsecase) FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Medicine, *responses.Pagination, error) {
	args := m.Called(ctx, query)
	medicines, _ := args.Get(0).([]responses.Medicine)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return medicines, pagination, args.Error(2)
}

func (m *MedicineUsecase) Update(ctx context.Context, actor *models.Actor, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	args := m.Called(ctx, actor, medicineID, request)
	medicine, _ := args.Get(0).(*responses.Medicine)
	return medicine, args.Error(1)
}

func (m *MedicineUsecase) Delete(ctx context.Context, actor *models.Actor, medicineID string) error {
	args := m.Called(ctx, actor, medicineID)
	return args.Error(0)
}

type HospitalUsecase struct {
	mock.Mock
}

func (m *HospitalUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateHospital) (*responses.Hospital, error) {
	args := m.Called(ctx, actor, request)
	hospital, _ := args.Get(0).(*responses.Hospital)
	return hospital, args.Error(1)
}

func (m *HospitalUsecase) FindByID(ctx context.Context, hospitalID string) (*responses.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	hospital, _ := args.Get(0).(*responses.Hospital)
	return hospital, args.Error(1)
}

func (m *HospitalUsecase) FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Hospital, *responses.Pagination, error) {
	args := m.Called(ctx, query)
	hospitals, _ := args.Get(0).([]responses.Hospital)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return hospitals, pagination, args.Error(2)
}

func (m *HospitalUsecase) Update(ctx context.Context, actor *models.Actor, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error) {
	args := m.Called(ctx, actor, hospitalID, request)
	hospital, _ := args.Get(0).(*responses.Hospital)
	return hospital, args.Error(1)
}

func (m *HospitalUsecase) Delete(ctx context.Context, actor *models.Actor, hospitalID string) error {
	args := m.Called(ctx, actor, hospitalID)
	return args.Error(0)
}
