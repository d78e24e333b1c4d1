package events

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// NewEvent stamps a domain event with a fresh id and the current time.
func NewEvent(name string, actor *models.Actor, patientID string, payload map[string]interface{}) models.DomainEvent {
	event := models.DomainEvent{
		ID:         utils.GenerateRecordID(),
		Name:       name,
		OccurredAt: time.Now().UTC(),
		PatientID:  patientID,
		Payload:    payload,
	}
	if actor != nil {
		event.ActorID = actor.UserID
	}
	return event
}

// Emit publishes best effort. The operation that produced the event has
// already committed, so a publish failure is logged and never returned.
func Emit(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, event models.DomainEvent) {
	if publisher == nil {
		return
	}
	err := publisher.Publish(ctx, event)
	if err != nil {
		log.Warn("events.Emit failed to publish domain event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event.Name),
			zap.Error(err),
		)
	}
}
