package locker

import (
	"context"
	"errors"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestLockService(repo *mocks.RedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:doc-1", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:doc-1", time.Minute)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:doc-1", mock.AnythingOfType("string"), time.Minute).Return(false, nil)

		acquired, value, err := newTestLockService(repo).TryLock(ctx, "lock:doc-1", time.Minute)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "lock:doc-1", mock.AnythingOfType("string"), time.Minute).Return(false, errors.New("connection refused"))

		acquired, _, err := newTestLockService(repo).TryLock(ctx, "lock:doc-1", time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Releases", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndDelete", ctx, "lock:doc-1", "value-1").Return(contracts.CompareApplied, nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:doc-1", "value-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Expired Lock Is Not An Error", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndDelete", ctx, "lock:doc-1", "value-1").Return(contracts.CompareKeyMissing, nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:doc-1", "value-1")

		assert.NoError(t, err)
	})

	t.Run("Foreign Owner Is Left Alone", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndDelete", ctx, "lock:doc-1", "value-1").Return(contracts.CompareValueMismatch, nil)

		err := newTestLockService(repo).Unlock(ctx, "lock:doc-1", "value-1")

		assert.Error(t, err)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndDelete", ctx, "lock:doc-1", "value-1").Return(contracts.CompareKeyMissing, errors.New("connection refused"))

		err := newTestLockService(repo).Unlock(ctx, "lock:doc-1", "value-1")

		assert.Error(t, err)
	})
}

func TestLockService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Extends", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndExpire", ctx, "lock:doc-1", "value-1", 2*time.Minute).Return(contracts.CompareApplied, nil)

		err := newTestLockService(repo).Refresh(ctx, "lock:doc-1", "value-1", 2*time.Minute)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Lost Lock", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndExpire", ctx, "lock:doc-1", "value-1", 2*time.Minute).Return(contracts.CompareKeyMissing, nil)

		err := newTestLockService(repo).Refresh(ctx, "lock:doc-1", "value-1", 2*time.Minute)

		assert.Error(t, err)
	})

	t.Run("Taken Over", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("CompareAndExpire", ctx, "lock:doc-1", "value-1", 2*time.Minute).Return(contracts.CompareValueMismatch, nil)

		err := newTestLockService(repo).Refresh(ctx, "lock:doc-1", "value-1", 2*time.Minute)

		assert.Error(t, err)
	})
}
