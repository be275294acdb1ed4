package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"portfolio-backend/internal/media"
)

// UploadPrefix is the folder every project upload lands in.
const UploadPrefix = "project-images"

// ObjectStore is implemented by the Supabase and MinIO upload drivers.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

type StorageService struct {
	objects  ObjectStore
	maxWidth int
	now      func() time.Time
	logger   zerolog.Logger
}

func NewStorageService(objects ObjectStore, maxWidth int, logger zerolog.Logger) *StorageService {
	return &StorageService{
		objects:  objects,
		maxWidth: maxWidth,
		now:      time.Now,
		logger:   logger.With().Str("component", "storage").Logger(),
	}
}

// WithClock replaces the clock used to name uploads.
func (s *StorageService) WithClock(now func() time.Time) *StorageService {
	s.now = now
	return s
}

// UploadProjectMedia validates and stores one uploaded file and returns its
// public URL. Objects are named project-images/<unix millis>.<ext>.
func (s *StorageService) UploadProjectMedia(ctx context.Context, filename string, data []byte) (string, error) {
	file, err := media.Prepare(filename, data, s.maxWidth)
	if err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/%d.%s", UploadPrefix, s.now().UnixMilli(), file.Extension)
	url, err := s.objects.Upload(ctx, objectPath, file.ContentType, file.Data)
	if err != nil {
		return "", err
	}

	s.logger.Info().
		Str("path", objectPath).
		Str("content_type", file.ContentType).
		Int("bytes", len(file.Data)).
		Bool("resized", file.Resized).
		Msg("file uploaded")
	return url, nil
}
