package events

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) contracts.EventPublisher {
	return &kafkaPublisher{Writer: writer}
}

// Publish keys messages by patient so events for one patient stay ordered
// within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event models.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PatientID),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_name", Value: []byte(event.Name)},
		},
	})
	if err != nil {
		return exceptions.ErrEventPublish(err)
	}
	return nil
}

// Close is a no-op; the writer belongs to the bootstrap and is closed on shutdown.
func (p *kafkaPublisher) Close() error {
	return nil
}
