package cache

import (
	"context"
	"sehatnama-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cachedPage struct {
	Items []string `json:"items"`
}

func TestCatalogCache(t *testing.T) {
	ctx := context.Background()
	versionKey := "sehatnama:catalog:medicines:version"

	t.Run("Hit On Current Version", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, versionKey).Return("3", nil)
		repo.On("Get", ctx, "sehatnama:catalog:medicines:v3:p1:l10:q=").Return(`{"items":["Paracetamol"]}`, nil)

		var page cachedPage
		hit, err := NewCatalogCache(repo, time.Minute, zap.NewNop()).Get(ctx, "medicines", PageKey(1, 10, ""), &page)

		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, []string{"Paracetamol"}, page.Items)
	})

	t.Run("Miss Without Version", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, versionKey).Return("", nil)
		repo.On("Get", ctx, "sehatnama:catalog:medicines:v0:p2:l5:q=amo").Return("", nil)

		var page cachedPage
		hit, err := NewCatalogCache(repo, time.Minute, zap.NewNop()).Get(ctx, "medicines", PageKey(2, 5, "amo"), &page)

		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Set Uses TTL", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, versionKey).Return("1", nil)
		repo.On("Set", ctx, "sehatnama:catalog:medicines:v1:p1:l10:q=", mock.Anything, time.Minute).Return(nil)

		err := NewCatalogCache(repo, time.Minute, zap.NewNop()).Set(ctx, "medicines", PageKey(1, 10, ""), cachedPage{})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Invalidate Bumps Version", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Increment", ctx, versionKey).Return(int64(4), nil)

		err := NewCatalogCache(repo, time.Minute, zap.NewNop()).Invalidate(ctx, "medicines")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
