package blobstore

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/utils"
	"sync"
)

// memoryBlobStore keeps blobs in process memory. It backs local development
// and tests; contents are lost on restart.
type memoryBlobStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryBlobStore() contracts.BlobStore {
	return &memoryBlobStore{objects: make(map[string][]byte)}
}

func (m *memoryBlobStore) Put(ctx context.Context, namespace string, content []byte, filenameHint, contentType string) (string, error) {
	locator := utils.BuildObjectName(namespace, filenameHint)
	stored := make([]byte, len(content))
	copy(stored, content)

	m.mu.Lock()
	m.objects[locator] = stored
	m.mu.Unlock()
	return locator, nil
}

func (m *memoryBlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	m.mu.RLock()
	content, ok := m.objects[locator]
	m.mu.RUnlock()
	if !ok {
		return nil, contracts.ErrBlobNotFound
	}

	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *memoryBlobStore) Delete(ctx context.Context, locator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[locator]; !ok {
		return contracts.ErrBlobNotFound
	}
	delete(m.objects, locator)
	return nil
}
