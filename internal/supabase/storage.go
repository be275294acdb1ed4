package supabase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient uploads objects to a public Supabase storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores data under objectPath and returns its public URL. Existing
// objects are never overwritten.
func (s *StorageClient) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	upsert := false
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(objectPath), nil
}

func (s *StorageClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}
