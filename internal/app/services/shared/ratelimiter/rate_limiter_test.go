package ratelimiter

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

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 10, 0, 30, 0, time.UTC)

	input := func() *contracts.ApplyResourceLimiterInput {
		return &contracts.ApplyResourceLimiterInput{
			ResourceName:      "User-1",
			LimiterGroupName:  "document-process",
			WindowDurationSec: 60,
			MaxQuota:          2,
			NowUTC:            now,
		}
	}
	expectedKey := "sehatnama:ratelimit:DOCUMENT-PROCESS:user-1:28508280"

	t.Run("Within Quota", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(int64(2), nil)

		output, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		assert.NoError(t, err)
		assert.True(t, output.Allowed)
		repo.AssertExpectations(t)
	})

	t.Run("Over Quota", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(int64(3), nil)

		output, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		assert.NoError(t, err)
		assert.False(t, output.Allowed)
		assert.Equal(t, 31, output.RetryAfterSecs)
	})

	t.Run("Unlimited Quota Skips Redis", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		in := input()
		in.MaxQuota = 0

		output, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, in)

		assert.NoError(t, err)
		assert.True(t, output.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("IncrementWithTTL", ctx, expectedKey, 61*time.Second).Return(int64(0), errors.New("timeout"))

		output, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, input())

		assert.Error(t, err)
		assert.False(t, output.Allowed)
	})
}
