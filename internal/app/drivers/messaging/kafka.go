package messaging

import (
	"sehatnama-service/internal/app/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func NewKafkaWriter(driverConfig *config.DriverConfig, topic string, log *zap.Logger) *kafka.Writer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  driverConfig.Kafka.Brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	log.Info("Kafka writer initialized",
		zap.Strings("brokers", driverConfig.Kafka.Brokers),
		zap.String("topic", topic),
	)
	return writer
}
