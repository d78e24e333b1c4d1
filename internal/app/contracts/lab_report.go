package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
)

type LabReportUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreateLabReport) (*responses.LabReport, error)
	FindByID(ctx context.Context, actor *models.Actor, labReportID string) (*responses.LabReport, error)
	FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error)
	FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.LabReport, *responses.Pagination, error)
	Update(ctx context.Context, actor *models.Actor, labReportID string, request *requests.UpdateLabReport) (*responses.LabReport, error)
	Delete(ctx context.Context, actor *models.Actor, labReportID string) error
	CreateFromExtraction(ctx context.Context, actor *models.Actor, document *models.Document, fields *models.ExtractedFields) (*responses.LabReport, error)
}

type LabReportRepository interface {
	CreateLabReport(ctx context.Context, labReportModel *models.LabReport) error
	FindByID(ctx context.Context, labReportID string) (*models.LabReport, error)
	FindBySourceDocumentID(ctx context.Context, documentID string) (*models.LabReport, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.LabReport, int64, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error)
	Update(ctx context.Context, labReportID string, fields map[string]interface{}) (*models.LabReport, error)
	DeleteByID(ctx context.Context, labReportID string) error
	DeleteByPatientID(ctx context.Context, patientID string) (int64, error)
}
