package blobstore

import (
	"bytes"
	"context"
	"io"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
)

type minioBlobStore struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioBlobStore(minioClient *minio.Client, bucketName string) contracts.BlobStore {
	return &minioBlobStore{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// EnsureMinioBucket creates the document bucket on first start.
func EnsureMinioBucket(ctx context.Context, minioClient *minio.Client, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrBlobPut(err)
	}
	if exists {
		return nil
	}
	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrBlobPut(err)
	}
	return nil
}

func (m *minioBlobStore) Put(ctx context.Context, namespace string, content []byte, filenameHint, contentType string) (string, error) {
	objectName := utils.BuildObjectName(namespace, filenameHint)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrBlobPut(err)
	}

	return objectName, nil
}

func (m *minioBlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, locator, minio.GetObjectOptions{})
	if err != nil {
		return nil, m.translateError(err, exceptions.ErrBlobGet)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, m.translateError(err, exceptions.ErrBlobGet)
	}
	return content, nil
}

// Delete stats the object first because RemoveObject succeeds for missing keys.
func (m *minioBlobStore) Delete(ctx context.Context, locator string) error {
	_, err := m.MinioClient.StatObject(ctx, m.BucketName, locator, minio.StatObjectOptions{})
	if err != nil {
		return m.translateError(err, exceptions.ErrBlobDelete)
	}

	err = m.MinioClient.RemoveObject(ctx, m.BucketName, locator, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrBlobDelete(err)
	}
	return nil
}

func (m *minioBlobStore) translateError(err error, wrap func(error) *exceptions.CustomError) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return contracts.ErrBlobNotFound
	}
	return wrap(err)
}
