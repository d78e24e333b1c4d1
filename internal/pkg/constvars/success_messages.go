package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccessMessage    = "account registered successfully"
	LoginSuccessMessage       = "successfully login"
	LogoutSuccessMessage      = "successfully logout"
	GetProfileSuccessMessage  = "get profile successfully"
	CreateStaffSuccessMessage = "staff account created successfully"

	// Patient messages
	RegisterPatientSuccessMessage = "patient registered successfully"
	GetPatientSuccessMessage      = "get patient successfully"
	ListPatientsSuccessMessage    = "get patients successfully"
	UpdatePatientSuccessMessage   = "patient updated successfully"
	DeletePatientSuccessMessage   = "patient and related records deleted successfully"
	GetHistorySuccessMessage      = "get patient history successfully"

	// Clinical record messages
	CreateAppointmentSuccessMessage   = "appointment created successfully"
	GetAppointmentSuccessMessage      = "get appointment successfully"
	ListAppointmentsSuccessMessage    = "get appointments successfully"
	UpdateAppointmentSuccessMessage   = "appointment updated successfully"
	DeleteAppointmentSuccessMessage   = "appointment deleted successfully"
	CreatePrescriptionSuccessMessage  = "prescription created successfully"
	GetPrescriptionSuccessMessage     = "get prescription successfully"
	ListPrescriptionsSuccessMessage   = "get prescriptions successfully"
	UpdatePrescriptionSuccessMessage  = "prescription updated successfully"
	DeletePrescriptionSuccessMessage  = "prescription deleted successfully"
	CreateLabReportSuccessMessage     = "lab report created successfully"
	GetLabReportSuccessMessage        = "get lab report successfully"
	ListLabReportsSuccessMessage      = "get lab reports successfully"
	UpdateLabReportSuccessMessage     = "lab report updated successfully"
	DeleteLabReportSuccessMessage     = "lab report deleted successfully"

	// Document messages
	UploadDocumentSuccessMessage  = "document uploaded successfully"
	GetDocumentSuccessMessage     = "get document successfully"
	ListDocumentsSuccessMessage   = "get documents successfully"
	DeleteDocumentSuccessMessage  = "document deleted successfully"
	ProcessDocumentSuccessMessage = "document processed successfully"

	// Catalog messages
	CreateMedicineSuccessMessage = "medicine created successfully"
	GetMedicineSuccessMessage    = "get medicine successfully"
	ListMedicinesSuccessMessage  = "get medicines successfully"
	UpdateMedicineSuccessMessage = "medicine updated successfully"
	DeleteMedicineSuccessMessage = "medicine deleted successfully"
	CreateHospitalSuccessMessage = "hospital created successfully"
	GetHospitalSuccessMessage    = "get hospital successfully"
	ListHospitalsSuccessMessage  = "get hospitals successfully"
	UpdateHospitalSuccessMessage = "hospital updated successfully"
	DeleteHospitalSuccessMessage = "hospital deleted successfully"
)
