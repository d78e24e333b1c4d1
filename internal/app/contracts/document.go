package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

type DocumentUsecase interface {
	Upload(ctx context.Context, actor *models.Actor, patientID string, request *requests.UploadDocument) (*responses.Document, error)
	FindByID(ctx context.Context, actor *models.Actor, documentID string) (*responses.Document, error)
	FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Document, *responses.Pagination, error)
	Download(ctx context.Context, actor *models.Actor, documentID string) (*responses.DocumentFile, error)
	Remove(ctx context.Context, actor *models.Actor, documentID string) error
	Process(ctx context.Context, actor *models.Actor, documentID string) (*responses.ProcessDocument, error)
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, documentModel *models.Document) error
	FindByID(ctx context.Context, documentID string) (*models.Document, error)
	FindByPatientID(ctx context.Context, patientID string, query *requests.ListQuery) ([]models.Document, int64, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.Document, error)
	FindAllByPatientIDAndType(ctx context.Context, patientID, documentType string) ([]models.Document, error)
	// MarkProcessed flips processed to true only if it is still false and
	// reports whether this call did it.
	MarkProcessed(ctx context.Context, documentID string, processedAt time.Time) (bool, error)
	DeleteByID(ctx context.Context, documentID string) error
	DeleteByPatientID(ctx context.Context, patientID string) (int64, error)
}
