package config

import (
	"sehatnama-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "sehatnama"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Kafka: Kafka{
			Brokers: utils.GetEnvStringSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		S3: S3{
			Region:          utils.GetEnvString("S3_REGION", "ap-southeast-1"),
			Endpoint:        utils.GetEnvString("S3_ENDPOINT", ""),
			AccessKeyID:     utils.GetEnvString("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: utils.GetEnvString("S3_SECRET_ACCESS_KEY", ""),
			UsePathStyle:    utils.GetEnvBool("S3_USE_PATH_STYLE", false),
		},
	}
}

var internalDefaults = map[string]interface{}{
	"app.env":                            "development",
	"app.port":                           ":8080",
	"app.version":                        "v1",
	"app.timezone":                       "Asia/Jakarta",
	"app.endpoint_prefix":                "/api",
	"app.max_requests":                   100,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_body_limit_in_megabyte": 1,

	"jwt.secret":           "change-me",
	"jwt.exp_time_in_hour": 24,

	"session.expired_time_in_hours": 24,

	"blob_store.driver": "minio",
	"blob_store.bucket": "sehatnama-documents",

	"patient.generated_password_length": 12,

	"document.max_upload_size_in_mb":          10,
	"document.process_lock_ttl_in_seconds":    60,
	"document.process_rate_limit":             20,
	"document.process_rate_window_in_seconds": 60,
	"document.request_timeout_in_seconds":     30,

	"upload.rate_per_minute": 30,
	"upload.burst":           5,

	"extraction.engine":              "placeholder",
	"extraction.url":                 "",
	"extraction.timeout_in_seconds":  20,
	"extraction.requests_per_second": 2.0,

	"event.broker": "rabbitmq",
	"event.queue":  "sehatnama.events",
	"event.topic":  "sehatnama.events",

	"catalog.cache_ttl_in_minutes": 10,
}

// NewInternalConfig reads application settings from the environment. Nested keys
// map to upper snake case variables, so "document.process_rate_limit" is
// DOCUMENT_PROCESS_RATE_LIMIT.
func NewInternalConfig() (*InternalConfig, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range internalDefaults {
		v.SetDefault(key, value)
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, err
	}
	return internalConfig, nil
}
