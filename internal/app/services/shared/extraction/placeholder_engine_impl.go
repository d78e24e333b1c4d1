package extraction

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
)

const (
	placeholderPendingReview = "Pending review"
	placeholderNotes         = "Created from an uploaded document, awaiting clinician review"
)

type placeholderEngine struct{}

// NewPlaceholderEngine stands in for a real OCR pipeline. It yields one
// reviewable stub per clinical document type and nothing for the others.
func NewPlaceholderEngine() contracts.ExtractionEngine {
	return placeholderEngine{}
}

func (placeholderEngine) Extract(ctx context.Context, content []byte, fileType, declaredType string) models.ExtractionResult {
	switch declaredType {
	case constvars.DocumentTypePrescription:
		return models.Extracted(models.ExtractedFields{
			Notes: placeholderNotes,
			Medications: []models.Medication{
				{Name: placeholderPendingReview},
			},
		})
	case constvars.DocumentTypeLabReport:
		return models.Extracted(models.ExtractedFields{
			Notes:    placeholderNotes,
			TestType: placeholderPendingReview,
		})
	default:
		return models.NotApplicable()
	}
}
