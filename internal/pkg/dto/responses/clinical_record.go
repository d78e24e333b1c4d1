package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName"`
	DoctorID    string    `json:"doctorId,omitempty"`
	DoctorName  string    `json:"doctorName,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Purpose     string    `json:"purpose"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	ManualEntry bool      `json:"manualEntry"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type Prescription struct {
	ID               string       `json:"id"`
	PatientID        string       `json:"patientId"`
	PatientName      string       `json:"patientName"`
	DoctorID         string       `json:"doctorId"`
	DoctorName       string       `json:"doctorName"`
	Date             string       `json:"date"`
	Medications      []Medication `json:"medications"`
	Notes            string       `json:"notes,omitempty"`
	Status           string       `json:"status"`
	SourceDocumentID string       `json:"sourceDocumentId,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type LabResult struct {
	Test        string `json:"test"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	NormalRange string `json:"normalRange"`
	Status      string `json:"status"`
}

type LabReport struct {
	ID               string      `json:"id"`
	PatientID        string      `json:"patientId"`
	PatientName      string      `json:"patientName"`
	DoctorID         string      `json:"doctorId"`
	DoctorName       string      `json:"doctorName"`
	TestType         string      `json:"testType"`
	LabName          string      `json:"labName"`
	Date             string      `json:"date"`
	Status           string      `json:"status"`
	Results          []LabResult `json:"results"`
	Notes            string      `json:"notes,omitempty"`
	SourceDocumentID string      `json:"sourceDocumentId,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
