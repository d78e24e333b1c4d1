package models

import (
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

type LabResult struct {
	Test        string `bson:"test"`
	Value       string `bson:"value"`
	Unit        string `bson:"unit"`
	NormalRange string `bson:"normalRange"`
	Status      string `bson:"status"`
}

type LabReport struct {
	ID               string      `bson:"_id"`
	PatientID        string      `bson:"patientId"`
	PatientName      string      `bson:"patientName"`
	DoctorID         string      `bson:"doctorId"`
	DoctorName       string      `bson:"doctorName"`
	TestType         string      `bson:"testType"`
	LabName          string      `bson:"labName"`
	Date             time.Time   `bson:"date"`
	Status           string      `bson:"status"`
	Results          []LabResult `bson:"results"`
	Notes            string      `bson:"notes,omitempty"`
	SourceDocumentID string      `bson:"sourceDocumentId,omitempty"`
	TimeModel        `bson:",inline"`
}

func (l LabReport) ConvertIntoResponse() responses.LabReport {
	results := make([]responses.LabResult, len(l.Results))
	for i, result := range l.Results {
		results[i] = responses.LabResult{
			Test:        result.Test,
			Value:       result.Value,
			Unit:        result.Unit,
			NormalRange: result.NormalRange,
			Status:      result.Status,
		}
	}
	return responses.LabReport{
		ID:               l.ID,
		PatientID:        l.PatientID,
		PatientName:      l.PatientName,
		DoctorID:         l.DoctorID,
		DoctorName:       l.DoctorName,
		TestType:         l.TestType,
		LabName:          l.LabName,
		Date:             l.Date.UTC().Format(constvars.DateLayout),
		Status:           l.Status,
		Results:          results,
		Notes:            l.Notes,
		SourceDocumentID: l.SourceDocumentID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
