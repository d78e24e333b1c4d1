package responses

import "time"

type Patient struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	BloodGroup       string    `json:"bloodGroup"`
	Contact          string    `json:"contact"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	Condition        string    `json:"condition,omitempty"`
	Allergies        []string  `json:"allergies"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type DeletePatient struct {
	PatientID            string `json:"patientId"`
	DeletedAppointments  int64  `json:"deletedAppointments"`
	DeletedPrescriptions int64  `json:"deletedPrescriptions"`
	DeletedLabReports    int64  `json:"deletedLabReports"`
	DeletedDocuments     int64  `json:"deletedDocuments"`
	OrphanedBlobs        int    `json:"orphanedBlobs"`
	DeletedUser          bool   `json:"deletedUser"`
}
