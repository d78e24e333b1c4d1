package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		internalConfig, err := NewInternalConfig()

		require.NoError(t, err)
		assert.Equal(t, int64(10), internalConfig.Document.MaxUploadSizeInMB)
		assert.Equal(t, "v1", internalConfig.App.Version)
		assert.Equal(t, "/api", internalConfig.App.EndpointPrefix)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("BLOB_STORE_DRIVER", "memory")
		t.Setenv("DOCUMENT_PROCESS_RATE_LIMIT", "3")
		t.Setenv("EXTRACTION_REQUESTS_PER_SECOND", "0.5")

		internalConfig, err := NewInternalConfig()

		require.NoError(t, err)
		assert.Equal(t, "memory", internalConfig.BlobStore.Driver)
		assert.Equal(t, 3, internalConfig.Document.ProcessRateLimit)
		assert.Equal(t, 0.5, internalConfig.Extraction.RequestsPerSecond)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	driverConfig := NewDriverConfig()

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, driverConfig.Kafka.Brokers)
}
