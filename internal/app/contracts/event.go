package contracts

import (
	"context"
	"sehatnama-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent) error
	Close() error
}
