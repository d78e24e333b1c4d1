package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPatientID(ctx context.Context, patientID string) (*models.User, error)
	// LinkPatient sets patientId only when the user is not linked yet and
	// reports whether the update happened.
	LinkPatient(ctx context.Context, userID, patientID string) (bool, error)
	UnlinkPatient(ctx context.Context, userID string) error
	DeleteByID(ctx context.Context, userID string) error
}
