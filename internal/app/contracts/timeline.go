package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/dto/responses"
)

type TimelineUsecase interface {
	BuildHistory(ctx context.Context, actor *models.Actor, patientID string) ([]responses.TimelineEvent, error)
}
