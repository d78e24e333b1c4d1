package logger

import (
	"log"
	"sehatnama-service/internal/app/config"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "sehatnama-service"

// NewZapLogger builds the JSON logger shared by the http server and the maintenance cli.
// Production also writes to the configured log files and samples repeated entries.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	env := strings.ToLower(internalConfig.App.Env)
	outputPaths, errorOutputPaths := outputsFor(env, driverConfig.Logger)

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development: env == "development",
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
		InitialFields: map[string]interface{}{
			"service": serviceName,
			"env":     env,
		},
	}
	if env == "production" {
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}

func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zap.InfoLevel
	}
	return parsed
}

func outputsFor(env string, cfg config.Logger) ([]string, []string) {
	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if env != "production" {
		return outputPaths, errorOutputPaths
	}
	if cfg.OutputFileName != "" {
		outputPaths = append(outputPaths, cfg.OutputFileName)
	}
	if cfg.OutputErrorFileName != "" {
		errorOutputPaths = append(errorOutputPaths, cfg.OutputErrorFileName)
	}
	return outputPaths, errorOutputPaths
}
