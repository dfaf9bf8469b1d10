package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	files := NewMemoryStorage("http://files.test/")

	url, err := files.PutObject(ctx, "profile-photos/u1/a.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	assert.Equal(t, "http://files.test/profile-photos/u1/a.png", url)

	key, ok := files.KeyForURL(url)
	require.True(t, ok)
	assert.Equal(t, "profile-photos/u1/a.png", key)

	_, ok = files.KeyForURL("https://elsewhere.test/profile-photos/u1/a.png")
	assert.False(t, ok)
	_, ok = files.KeyForURL("http://files.test/")
	assert.False(t, ok)

	signed, err := files.GeneratePresignedDownloadURL(ctx, key, 0)
	require.NoError(t, err)
	assert.Equal(t, url+"?expires=900", signed)

	require.NoError(t, files.DeleteObject(ctx, key))
	assert.ErrorIs(t, files.DeleteObject(ctx, key), ErrObjectNotFound)
	_, err = files.GeneratePresignedDownloadURL(ctx, key, DefaultPresignedURLExpiry)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
