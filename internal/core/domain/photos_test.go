package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePhotos(t *testing.T) {
	assert.Equal(t, "[]", EncodePhotos(nil))
	assert.Equal(t, "[]", EncodePhotos([]string{}))
	assert.Equal(t, `["/uploads/a.jpg"]`, EncodePhotos([]string{"/uploads/a.jpg"}))
}

func TestDecodePhotos(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		photos := []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"}

		decoded, err := DecodePhotos(EncodePhotos(photos))

		require.NoError(t, err)
		assert.Equal(t, photos, decoded)
	})

	t.Run("EmptyStringMeansNoPhotos", func(t *testing.T) {
		decoded, err := DecodePhotos("")

		require.NoError(t, err)
		assert.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})

	t.Run("JsonNullNormalizedToEmptyList", func(t *testing.T) {
		decoded, err := DecodePhotos("null")

		require.NoError(t, err)
		assert.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		_, err := DecodePhotos("{not json")

		assert.Error(t, err)
	})
}
