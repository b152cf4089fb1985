package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "cache"))

	t.Run("MissingIsNotFound", func(t *testing.T) {
		_, err := store.Read(ctx, "all.json")
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := store.Exists(ctx, "all.json")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "all.json", []byte(`{"a":1}`)))

		data, err := store.Read(ctx, "all.json")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))

		exists, err := store.Exists(ctx, "all.json")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("OverwriteReplacesWholePayload", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "all.json", []byte(`{"a":1,"b":2,"c":3}`)))
		require.NoError(t, store.Write(ctx, "all.json", []byte(`{}`)))

		data, err := store.Read(ctx, "all.json")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}

func TestFileStore_InvalidID(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	for _, id := range []string{"", "..", "../escape.json", "nested/file.json"} {
		t.Run(id, func(t *testing.T) {
			_, err := store.Read(ctx, id)
			assert.ErrorIs(t, err, ErrInvalidID)
			assert.ErrorIs(t, store.Write(ctx, id, []byte("x")), ErrInvalidID)
		})
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore(t.TempDir())
	assert.ErrorIs(t, store.Write(ctx, "x.json", []byte("x")), context.Canceled)
	_, err := store.Read(ctx, "x.json")
	assert.ErrorIs(t, err, context.Canceled)
}
