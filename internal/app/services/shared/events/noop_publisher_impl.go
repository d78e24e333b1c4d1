package events

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
)

type noopPublisher struct{}

func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event models.DomainEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
