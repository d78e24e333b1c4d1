package messaging

import (
	"net/url"
	"sehatnama-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	rabbitMQConnectionName = "sehatnama-service.events"
	rabbitMQHeartbeat      = 10 * time.Second
)

// NewRabbitMQ opens the connection used by the domain event publisher.
// The connection is named so it can be told apart in the broker's management ui.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	brokerURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   driverConfig.RabbitMQ.Host + ":" + driverConfig.RabbitMQ.Port,
		Path:   "/",
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(rabbitMQConnectionName)

	conn, err := amqp091.DialConfig(brokerURL.String(), amqp091.Config{
		Heartbeat:  rabbitMQHeartbeat,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ",
			zap.String("host", driverConfig.RabbitMQ.Host),
			zap.Error(err),
		)
	}
	log.Info("Successfully connected to rabbitMQ", zap.String("connection_name", rabbitMQConnectionName))
	return conn
}
