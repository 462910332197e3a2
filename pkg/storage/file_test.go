package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")

	s := NewFileStore(path)
	require.NoError(t, s.Set(KeyAccessToken, []byte("token-abc")))
	require.NoError(t, s.Set(KeyCart, []byte(`[{"id":1,"cantidad":2}]`)))

	// A fresh store reading the same file sees the same values.
	reloaded := NewFileStore(path)
	v, ok := reloaded.Get(KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "token-abc", string(v))
	v, ok = reloaded.Get(KeyCart)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"cantidad":2}]`, string(v))
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")

	s := NewFileStore(path)
	require.NoError(t, s.Set(KeyRefreshToken, []byte("r1")))
	require.NoError(t, s.Delete(KeyRefreshToken))

	_, ok := NewFileStore(path).Get(KeyRefreshToken)
	assert.False(t, ok)
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	_, ok := s.Get(KeyCart)
	assert.False(t, ok)
}

func TestFileStoreCorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	s := NewFileStore(path)
	_, ok := s.Get(KeyCart)
	assert.False(t, ok)

	// And the store still accepts writes afterwards.
	require.NoError(t, s.Set(KeyCart, []byte("[]")))
}
