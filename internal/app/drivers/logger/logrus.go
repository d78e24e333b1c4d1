package logger

import (
	"os"
	"sehatnama-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is used by the maintenance CLI, whose output is read by operators.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	switch internalConfig.App.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
