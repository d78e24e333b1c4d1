package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
)

type MedicineUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreateMedicine) (*responses.Medicine, error)
	FindByID(ctx context.Context, medicineID string) (*responses.Medicine, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Medicine, *responses.Pagination, error)
	Update(ctx context.Context, actor *models.Actor, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error)
	Delete(ctx context.Context, actor *models.Actor, medicineID string) error
}

type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicineModel *models.Medicine) error
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Medicine, int64, error)
	Update(ctx context.Context, medicineID string, fields map[string]interface{}) (*models.Medicine, error)
	DeleteByID(ctx context.Context, medicineID string) error
	UpsertByName(ctx context.Context, medicineModel *models.Medicine) error
}

type HospitalUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreateHospital) (*responses.Hospital, error)
	FindByID(ctx context.Context, hospitalID string) (*responses.Hospital, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Hospital, *responses.Pagination, error)
	Update(ctx context.Context, actor *models.Actor, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error)
	Delete(ctx context.Context, actor *models.Actor, hospitalID string) error
}

type HospitalRepository interface {
	CreateHospital(ctx context.Context, hospitalModel *models.Hospital) error
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Hospital, int64, error)
	Update(ctx context.Context, hospitalID string, fields map[string]interface{}) (*models.Hospital, error)
	DeleteByID(ctx context.Context, hospitalID string) error
	UpsertByName(ctx context.Context, hospitalModel *models.Hospital) error
}

// CatalogCache stores list pages under a version that every write bumps.
type CatalogCache interface {
	Get(ctx context.Context, catalog, pageKey string, dest interface{}) (bool, error)
	Set(ctx context.Context, catalog, pageKey string, value interface{}) error
	Invalidate(ctx context.Context, catalog string) error
}
