package contracts

import (
	"context"
	"errors"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
)

// ErrDuplicatePatientID is wrapped by CreatePatient when the identifier is taken.
var ErrDuplicatePatientID = errors.New("patient identifier already in use")

type PatientUsecase interface {
	Register(ctx context.Context, actor *models.Actor, request *requests.RegisterPatient) (*responses.Patient, error)
	FindByID(ctx context.Context, actor *models.Actor, patientID string) (*responses.Patient, error)
	FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Patient, *responses.Pagination, error)
	Update(ctx context.Context, actor *models.Actor, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, actor *models.Actor, patientID string) (*responses.DeletePatient, error)
	// Authorize loads the patient and applies the ownership rule, returning 403
	// to patient actors whether or not the patient exists.
	Authorize(ctx context.Context, actor *models.Actor, patientID string) (*models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientModel *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Patient, int64, error)
	Update(ctx context.Context, patientID string, fields map[string]interface{}) (*models.Patient, error)
	DeleteByID(ctx context.Context, patientID string) error
	FindHighestSequence(ctx context.Context) (int64, error)
}
