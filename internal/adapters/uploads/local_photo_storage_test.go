package uploads

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPhotoStorage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstUploadKeepsName", func(t *testing.T) {
		storage, err := NewLocalPhotoStorage(t.TempDir())
		require.NoError(t, err)

		name, err := storage.Save(ctx, "photo.jpg", []byte("one"))

		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", name)

		content, err := os.ReadFile(filepath.Join(storage.Dir(), "photo.jpg"))
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), content)
	})

	t.Run("CollisionsProbeNumericSuffixes", func(t *testing.T) {
		storage, err := NewLocalPhotoStorage(t.TempDir())
		require.NoError(t, err)

		first, err := storage.Save(ctx, "photo.jpg", []byte("one"))
		require.NoError(t, err)
		second, err := storage.Save(ctx, "photo.jpg", []byte("two"))
		require.NoError(t, err)
		third, err := storage.Save(ctx, "photo.jpg", []byte("three"))
		require.NoError(t, err)

		assert.Equal(t, "photo.jpg", first)
		assert.Equal(t, "photo_1.jpg", second)
		assert.Equal(t, "photo_2.jpg", third)

		// первый файл не перезаписан
		content, err := os.ReadFile(filepath.Join(storage.Dir(), "photo.jpg"))
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), content)
	})

	t.Run("SuffixGoesBeforeExtension", func(t *testing.T) {
		storage, err := NewLocalPhotoStorage(t.TempDir())
		require.NoError(t, err)

		_, err = storage.Save(ctx, "flat.view.png", []byte("one"))
		require.NoError(t, err)
		second, err := storage.Save(ctx, "flat.view.png", []byte("two"))
		require.NoError(t, err)

		assert.Equal(t, "flat.view_1.png", second)
	})

	t.Run("NameWithoutExtension", func(t *testing.T) {
		storage, err := NewLocalPhotoStorage(t.TempDir())
		require.NoError(t, err)

		_, err = storage.Save(ctx, "floorplan", []byte("one"))
		require.NoError(t, err)
		second, err := storage.Save(ctx, "floorplan", []byte("two"))
		require.NoError(t, err)

		assert.Equal(t, "floorplan_1", second)
	})

	t.Run("PathComponentsStripped", func(t *testing.T) {
		storage, err := NewLocalPhotoStorage(t.TempDir())
		require.NoError(t, err)

		name, err := storage.Save(ctx, "../../etc/passwd.jpg", []byte("data"))

		require.NoError(t, err)
		assert.Equal(t, "passwd.jpg", name)
		_, statErr := os.Stat(filepath.Join(storage.Dir(), "passwd.jpg"))
		assert.NoError(t, statErr)
	})
}
