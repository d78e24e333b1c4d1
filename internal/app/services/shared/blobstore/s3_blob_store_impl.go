package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3BlobStore struct {
	Client     *s3.Client
	BucketName string
}

func NewS3BlobStore(client *s3.Client, bucketName string) contracts.BlobStore {
	return &s3BlobStore{
		Client:     client,
		BucketName: bucketName,
	}
}

func (s *s3BlobStore) Put(ctx context.Context, namespace string, content []byte, filenameHint, contentType string) (string, error) {
	objectName := utils.BuildObjectName(namespace, filenameHint)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.BucketName),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", exceptions.ErrBlobPut(err)
	}
	return objectName, nil
}

func (s *s3BlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	resp, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(locator),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, contracts.ErrBlobNotFound
		}
		return nil, exceptions.ErrBlobGet(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrBlobGet(err)
	}
	return content, nil
}

// Delete checks existence with HeadObject since DeleteObject is idempotent on S3.
func (s *s3BlobStore) Delete(ctx context.Context, locator string) error {
	_, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(locator),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return contracts.ErrBlobNotFound
		}
		return exceptions.ErrBlobDelete(err)
	}

	_, err = s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(locator),
	})
	if err != nil {
		return exceptions.ErrBlobDelete(err)
	}
	return nil
}
