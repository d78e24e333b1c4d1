package models

import (
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

type Medication struct {
	Name      string `bson:"name"`
	Dosage    string `bson:"dosage"`
	Frequency string `bson:"frequency"`
	Duration  string `bson:"duration"`
}

type Prescription struct {
	ID               string       `bson:"_id"`
	PatientID        string       `bson:"patientId"`
	PatientName      string       `bson:"patientName"`
	DoctorID         string       `bson:"doctorId"`
	DoctorName       string       `bson:"doctorName"`
	Date             time.Time    `bson:"date"`
	Medications      []Medication `bson:"medications"`
	Notes            string       `bson:"notes,omitempty"`
	Status           string       `bson:"status"`
	SourceDocumentID string       `bson:"sourceDocumentId,omitempty"`
	TimeModel        `bson:",inline"`
}

func (p Prescription) ConvertIntoResponse() responses.Prescription {
	medications := make([]responses.Medication, len(p.Medications))
	for i, medication := range p.Medications {
		medications[i] = responses.Medication{
			Name:      medication.Name,
			Dosage:    medication.Dosage,
			Frequency: medication.Frequency,
			Duration:  medication.Duration,
		}
	}
	return responses.Prescription{
		ID:               p.ID,
		PatientID:        p.PatientID,
		PatientName:      p.PatientName,
		DoctorID:         p.DoctorID,
		DoctorName:       p.DoctorName,
		Date:             p.Date.UTC().Format(constvars.DateLayout),
		Medications:      medications,
		Notes:            p.Notes,
		Status:           p.Status,
		SourceDocumentID: p.SourceDocumentID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
