package mocks

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (contracts.CompareResult, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(contracts.CompareResult), args.Error(1)
}

func (m *RedisRepository) CompareAndExpire(ctx context.Context, key string, value interface{}, ttl time.Duration) (contracts.CompareResult, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Get(0).(contracts.CompareResult), args.Error(1)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type ResourceLimiter struct {
	mock.Mock
}

func (m *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	output, _ := args.Get(0).(*contracts.ApplyResourceLimiterOutput)
	return output, args.Error(1)
}

type BlobStore struct {
	mock.Mock
}

func (m *BlobStore) Put(ctx context.Context, namespace string, content []byte, filenameHint, contentType string) (string, error) {
	args := m.Called(ctx, namespace, content, filenameHint, contentType)
	return args.String(0), args.Error(1)
}

func (m *BlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	args := m.Called(ctx, locator)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, locator string) error {
	args := m.Called(ctx, locator)
	return args.Error(0)
}

type ExtractionEngine struct {
	mock.Mock
}

func (m *ExtractionEngine) Extract(ctx context.Context, content []byte, fileType, declaredType string) models.ExtractionResult {
	args := m.Called(ctx, content, fileType, declaredType)
	return args.Get(0).(models.ExtractionResult)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event models.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type PatientIDGenerator struct {
	mock.Mock
}

func (m *PatientIDGenerator) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *PatientIDGenerator) SyncTo(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

type CatalogCache struct {
	mock.Mock
}

func (m *CatalogCache) Get(ctx context.Context, catalog, pageKey string, dest interface{}) (bool, error) {
	args := m.Called(ctx, catalog, pageKey, dest)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogCache) Set(ctx context.Context, catalog, pageKey string, value interface{}) error {
	args := m.Called(ctx, catalog, pageKey, value)
	return args.Error(0)
}

func (m *CatalogCache) Invalidate(ctx context.Context, catalog string) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}
