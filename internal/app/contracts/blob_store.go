package contracts

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get and Delete when the locator points at nothing.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps document bytes. The locator returned by Put is opaque to callers.
type BlobStore interface {
	Put(ctx context.Context, namespace string, content []byte, filenameHint, contentType string) (string, error)
	Get(ctx context.Context, locator string) ([]byte, error)
	Delete(ctx context.Context, locator string) error
}
