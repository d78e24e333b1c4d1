package models

import (
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

// Appointment names are a write-time snapshot and are not refreshed when the
// patient or doctor is renamed.
type Appointment struct {
	ID          string    `bson:"_id"`
	PatientID   string    `bson:"patientId"`
	PatientName string    `bson:"patientName"`
	DoctorID    string    `bson:"doctorId,omitempty"`
	DoctorName  string    `bson:"doctorName,omitempty"`
	Date        time.Time `bson:"date"`
	Time        string    `bson:"time"`
	Purpose     string    `bson:"purpose"`
	Notes       string    `bson:"notes,omitempty"`
	Status      string    `bson:"status"`
	ManualEntry bool      `bson:"manualEntry"`
	CreatedBy   string    `bson:"createdBy"`
	TimeModel   `bson:",inline"`
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:          a.ID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		DoctorID:    a.DoctorID,
		DoctorName:  a.DoctorName,
		Date:        a.Date.UTC().Format(constvars.DateLayout),
		Time:        a.Time,
		Purpose:     a.Purpose,
		Notes:       a.Notes,
		Status:      a.Status,
		ManualEntry: a.ManualEntry,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
