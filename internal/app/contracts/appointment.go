package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindByID(ctx context.Context, actor *models.Actor, appointmentID string) (*responses.Appointment, error)
	FindAll(ctx context.Context, actor *models.Actor, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error)
	FindByPatientID(ctx context.Context, actor *models.Actor, patientID string, query *requests.ListQuery) ([]responses.Appointment, *responses.Pagination, error)
	FindToday(ctx context.Context, actor *models.Actor) ([]responses.Appointment, error)
	Update(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	Delete(ctx context.Context, actor *models.Actor, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Appointment, int64, error)
	FindAllByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDay(ctx context.Context, day time.Time, patientID string) ([]models.Appointment, error)
	Update(ctx context.Context, appointmentID string, fields map[string]interface{}) (*models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID string) error
	DeleteByPatientID(ctx context.Context, patientID string) (int64, error)
}
