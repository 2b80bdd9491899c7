package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevHubCode/DevHub/internal/apperr"
)

// fakeStore falha as primeiras failUntil chamadas e depois aceita.
type fakeStore struct {
	calls     int
	failUntil int
	lastTags  map[string]string
}

func (f *fakeStore) Put(_ context.Context, key string, _ []byte, _ string, tags map[string]string) (string, error) {
	f.calls++
	f.lastTags = tags
	if f.calls <= f.failUntil {
		return "", errors.New("connection reset")
	}
	return "etag-" + key, nil
}

func TestUploadPrimeiraTentativa(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store)

	etag, attempts, err := u.Upload(context.Background(), "k", []byte("foto"), "image/webp")

	require.NoError(t, err)
	assert.Equal(t, "etag-k", etag)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, "public", store.lastTags["environment"])
}

func TestUploadRecuperaNaTerceiraTentativa(t *testing.T) {
	store := &fakeStore{failUntil: 2}
	u := NewUploader(store)

	etag, attempts, err := u.Upload(context.Background(), "k", []byte("foto"), "image/webp")

	require.NoError(t, err)
	assert.Equal(t, "etag-k", etag)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, store.calls)
}

func TestUploadEsgotaTentativas(t *testing.T) {
	store := &fakeStore{failUntil: 10}
	u := NewUploader(store)

	_, attempts, err := u.Upload(context.Background(), "k", []byte("foto"), "image/webp")

	require.Error(t, err)
	var se *apperr.StorageError
	assert.ErrorAs(t, err, &se)
	// Nunca ha uma quarta chamada.
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, store.calls)
}

func TestPhotoKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	key := PhotoKey("freelancers", id, "John Doe", ".webp")

	assert.Equal(t,
		"freelancers/images/550e8400-e29b-41d4-a716-446655440000_John Doe/JohnDoe_profile-photo.webp",
		key)
}

func TestPhotoFileName(t *testing.T) {
	assert.Equal(t, "JohnDoe_profile-photo.jpg", PhotoFileName("John  Doe", ".jpg"))
	assert.Equal(t, "Ana_profile-photo.webp", PhotoFileName("Ana", ".webp"))
	assert.Equal(t, "desconhecido_profile-photo.jpg", PhotoFileName("   ", ".jpg"))
	assert.Equal(t, "desconhecido_profile-photo.jpg", PhotoFileName("", ".jpg"))
}
