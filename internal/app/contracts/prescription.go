package contracts

import (
	"context"
	"errors"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
)

// ErrDuplicateSourceDocument is wrapped by the repositories when a record
// derived from the same document already exists.
var ErrDuplicateSourceDocument = errors.New("record already derived from this document")

type PrescriptionUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreatePrescription) (*responses.Prescription, error)
	FindByID(ctx context.Context, actor *models.Actor, prescriptionID string) (*responses.Prescription, error)
	FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error)
	FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Prescription, *responses.Pagination, error)
	Update(ctx context.Context, actor *models.Actor, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error)
	Delete(ctx context.Context, actor *models.Actor, prescriptionID string) error
	// CreateFromExtraction stores the record synthesized from a processed document.
	CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.Prescription, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) error
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindBySourceDocumentID(ctx context.Context, documentID string) (*models.Prescription, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Prescription, int64, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	Update(ctx context.Context, prescriptionID string, fields map[string]interface{}) (*models.Prescription, error)
	DeleteByID(ctx context.Context, prescriptionID string) error
	DeleteByPatientID(ctx context.Context, patientID string) (int64, error)
}
