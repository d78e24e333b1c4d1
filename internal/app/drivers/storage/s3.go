package storage

import (
	"context"
	"sehatnama-service/internal/app/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// NewS3 uses the default AWS credential chain unless static keys are configured.
// S3_ENDPOINT points the client at S3-compatible services such as localstack.
func NewS3(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) *s3.Client {
	loadOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(driverConfig.S3.Region),
	}
	if driverConfig.S3.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(driverConfig.S3.AccessKeyID, driverConfig.S3.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		log.Fatal("Unable to load AWS SDK config", zap.Error(err))
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		UsePathStyle: driverConfig.S3.UsePathStyle,
	}
	if driverConfig.S3.Endpoint != "" {
		options.BaseEndpoint = aws.String(driverConfig.S3.Endpoint)
	}

	log.Info("Successfully initialized S3 client", zap.String("region", cfg.Region))
	return s3.New(options)
}
