package services_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/services"
)

type fakeObjectStore struct {
	path        string
	contentType string
	data        []byte
	err         error
}

func (f *fakeObjectStore) Upload(_ context.Context, objectPath, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.path, f.contentType, f.data = objectPath, contentType, data
	return "https://cdn.example.com/" + objectPath, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(10, 10, color.White)))
	return buf.Bytes()
}

func TestUploadProjectMedia(t *testing.T) {
	objects := &fakeObjectStore{}
	svc := services.NewStorageService(objects, 1920, zerolog.Nop()).
		WithClock(func() time.Time { return time.UnixMilli(1700000000123) })

	url, err := svc.UploadProjectMedia(context.Background(), "shot.png", pngBytes(t))
	require.NoError(t, err)

	assert.Equal(t, "project-images/1700000000123.png", objects.path)
	assert.Equal(t, "image/png", objects.contentType)
	assert.Equal(t, "https://cdn.example.com/project-images/1700000000123.png", url)
}

func TestUploadProjectMedia_Rejected(t *testing.T) {
	objects := &fakeObjectStore{}
	svc := services.NewStorageService(objects, 1920, zerolog.Nop())

	_, err := svc.UploadProjectMedia(context.Background(), "a.txt", []byte("plain text"))
	assert.ErrorIs(t, err, media.ErrUnsupported)
	assert.Empty(t, objects.path)
}

func TestUploadProjectMedia_StoreError(t *testing.T) {
	objects := &fakeObjectStore{err: errors.New("bucket gone")}
	svc := services.NewStorageService(objects, 1920, zerolog.Nop())

	_, err := svc.UploadProjectMedia(context.Background(), "shot.png", pngBytes(t))
	assert.EqualError(t, err, "bucket gone")
}
