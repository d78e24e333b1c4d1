package blobstore

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()
	content := []byte("%PDF-1.4 lab report")

	locator, err := store.Put(ctx, "P-1001", content, "Report.PDF", "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(locator, "P-1001/"))
	assert.True(t, strings.HasSuffix(locator, ".pdf"))

	content[0] = 'X'
	stored, err := store.Get(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 lab report", string(stored))

	other, err := store.Put(ctx, "P-1001", content, "Report.PDF", "application/pdf")
	require.NoError(t, err)
	assert.NotEqual(t, locator, other)

	require.NoError(t, store.Delete(ctx, locator))

	_, err = store.Get(ctx, locator)
	assert.ErrorIs(t, err, contracts.ErrBlobNotFound)
	assert.ErrorIs(t, store.Delete(ctx, locator), contracts.ErrBlobNotFound)
}
