package mocks

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByPatientID(ctx context.Context, patientID string) (*models.User, error) {
	args := m.Called(ctx, patientID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) LinkPatient(ctx context.Context, userID, patientID string) (bool, error) {
	args := m.Called(ctx, userID, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UnlinkPatient(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) error {
	args := m.Called(ctx, patientModel)
	return args.Error(0)
}

func (m *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Patient, int64, error) {
	args := m.Called(ctx, query)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Get(1).(int64), args.Error(2)
}

func (m *PatientRepository) Update(ctx context.Context, patientID string, fields map[string]interface{}) (*models.Patient, error) {
	args := m.Called(ctx, patientID, fields)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *PatientRepository) FindHighestSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	args := m.Called(ctx, appointmentModel)
	return args.Error(0)
}

func (m *AppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Appointment, int64, error) {
	args := m.Called(ctx, query)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Get(1).(int64), args.Error(2)
}

func (m *AppointmentRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) FindByDay(ctx context.Context, day time.Time, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, day, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) Update(ctx context.Context, appointmentID string, fields map[string]interface{}) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, fields)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *AppointmentRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) error {
	args := m.Called(ctx, prescriptionModel)
	return args.Error(0)
}

func (m *PrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, prescriptionID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Prescription, int64, error) {
	args := m.Called(ctx, query)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Get(1).(int64), args.Error(2)
}

func (m *PrescriptionRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	args := m.Called(ctx, patientID)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Error(1)
}

func (m *PrescriptionRepository) FindBySourceDocumentID(ctx context.Context, documentID string) (*models.Prescription, error) {
	args := m.Called(ctx, documentID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionRepository) Update(ctx context.Context, prescriptionID string, fields map[string]interface{}) (*models.Prescription, error) {
	args := m.Called(ctx, prescriptionID, fields)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionRepository) DeleteByID(ctx context.Context, prescriptionID string) error {
	args := m.Called(ctx, prescriptionID)
	return args.Error(0)
}

func (m *PrescriptionRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

type LabReportRepository struct {
	mock.Mock
}

func (m *LabReportRepository) CreateLabReport(ctx context.Context, labReportModel *models.LabReport) error {
	args := m.Called(ctx, labReportModel)
	return args.Error(0)
}

func (m *LabReportRepository) FindByID(ctx context.Context, labReportID string) (*models.LabReport, error) {
	args := m.Called(ctx, labReportID)
	labReport, _ := args.Get(0).(*models.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.LabReport, int64, error) {
	args := m.Called(ctx, query)
	labReports, _ := args.Get(0).([]models.LabReport)
	return labReports, args.Get(1).(int64), args.Error(2)
}

func (m *LabReportRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error) {
	args := m.Called(ctx, patientID)
	labReports, _ := args.Get(0).([]models.LabReport)
	return labReports, args.Error(1)
}

func (m *LabReportRepository) FindBySourceDocumentID(ctx context.Context, documentID string) (*models.LabReport, error) {
	args := m.Called(ctx, documentID)
	labReport, _ := args.Get(0).(*models.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportRepository) Update(ctx context.Context, labReportID string, fields map[string]interface{}) (*models.LabReport, error) {
	args := m.Called(ctx, labReportID, fields)
	labReport, _ := args.Get(0).(*models.LabReport)
	return labReport, args.Error(1)
}

func (m *LabReportRepository) DeleteByID(ctx context.Context, labReportID string) error {
	args := m.Called(ctx, labReportID)
	return args.Error(0)
}

func (m *LabReportRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

type DocumentRepository struct {
	mock.Mock
}

func (m *DocumentRepository) CreateDocument(ctx context.Context, documentModel *models.Document) error {
	args := m.Called(ctx, documentModel)
	return args.Error(0)
}

func (m *DocumentRepository) FindByID(ctx context.Context, documentID string) (*models.Document, error) {
	args := m.Called(ctx, documentID)
	document, _ := args.Get(0).(*models.Document)
	return document, args.Error(1)
}

func (m *DocumentRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.ListQuery) ([]models.Document, int64, error) {
	args := m.Called(ctx, patientID, query)
	documents, _ := args.Get(0).([]models.Document)
	return documents, args.Get(1).(int64), args.Error(2)
}

func (m *DocumentRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Document, error) {
	args := m.Called(ctx, patientID)
	documents, _ := args.Get(0).([]models.Document)
	return documents, args.Error(1)
}

func (m *DocumentRepository) FindAllByPatientIDAndType(ctx context.Context, patientID, documentType string) ([]models.Document, error) {
	args := m.Called(ctx, patientID, documentType)
	documents, _ := args.Get(0).([]models.Document)
	return documents, args.Error(1)
}

func (m *DocumentRepository) MarkProcessed(ctx context.Context, documentID string, processedAt time.Time) (bool, error) {
	args := m.Called(ctx, documentID, processedAt)
	return args.Bool(0), args.Error(1)
}

func (m *DocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *DocumentRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

type MedicineRepository struct {
	mock.Mock
}

func (m *MedicineRepository) CreateMedicine(ctx context.Context, medicineModel *models.Medicine) error {
	args := m.Called(ctx, medicineModel)
	return args.Error(0)
}

func (m *MedicineRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	args := m.Called(ctx, medicineID)
	medicine, _ := args.Get(0).(*models.Medicine)
	return medicine, args.Error(1)
}

func (m *MedicineRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Medicine, int64, error) {
	args := m.Called(ctx, query)
	medicines, _ := args.Get(0).([]models.Medicine)
	return medicines, args.Get(1).(int64), args.Error(2)
}

func (m *MedicineRepository) Update(ctx context.Context, medicineID string, fields map[string]interface{}) (*models.Medicine, error) {
	args := m.Called(ctx, medicineID, fields)
	medicine, _ := args.Get(0).(*models.Medicine)
	return medicine, args.Error(1)
}

func (m *MedicineRepository) DeleteByID(ctx context.Context, medicineID string) error {
	args := m.Called(ctx, medicineID)
	return args.Error(0)
}

func (m *MedicineRepository) UpsertByName(ctx context.Context, medicineModel *models.Medicine) error {
	args := m.Called(ctx, medicineModel)
	return args.Error(0)
}

type HospitalRepository struct {
	mock.Mock
}

func (m *HospitalRepository) CreateHospital(ctx context.Context, hospitalModel *models.Hospital) error {
	args := m.Called(ctx, hospitalModel)
	return args.Error(0)
}

func (m *HospitalRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	hospital, _ := args.Get(0).(*models.Hospital)
	return hospital, args.Error(1)
}

func (m *HospitalRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Hospital, int64, error) {
	args := m.Called(ctx, query)
	hospitals, _ := args.Get(0).([]models.Hospital)
	return hospitals, args.Get(1).(int64), args.Error(2)
}

func (m *HospitalRepository) Update(ctx context.Context, hospitalID string, fields map[string]interface{}) (*models.Hospital, error) {
	args := m.Called(ctx, hospitalID, fields)
	hospital, _ := args.Get(0).(*models.Hospital)
	return hospital, args.Error(1)
}

func (m *HospitalRepository) DeleteByID(ctx context.Context, hospitalID string) error {
	args := m.Called(ctx, hospitalID)
	return args.Error(0)
}

func (m *HospitalRepository) UpsertByName(ctx context.Context, hospitalModel *models.Hospital) error {
	args := m.Called(ctx, hospitalModel)
	return args.Error(0)
}
