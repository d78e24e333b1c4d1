package storage

import (
	"net"
	"sehatnama-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio connects to a self-hosted MinIO using path-style bucket addressing.
func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) *minio.Client {
	endpoint := net.JoinHostPort(driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure:       driverConfig.Minio.UseSSL,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.String("endpoint", endpoint), zap.Error(err))
	}
	minioClient.SetAppInfo("sehatnama-service", internalConfig.App.Version)

	log.Info("Successfully connected to minio",
		zap.String("endpoint", endpoint),
		zap.String("bucket", internalConfig.BlobStore.Bucket),
	)
	return minioClient
}
