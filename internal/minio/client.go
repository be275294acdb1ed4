// Package minio is the self-hosted upload driver, selected with
// STORAGE_DRIVER=minio.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

type Client struct {
	client  *minioSDK.Client
	bucket  string
	baseURL string
}

// NewClient connects to MinIO and makes sure the bucket exists and is
// publicly readable.
func NewClient(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, logger zerolog.Logger) (*Client, error) {
	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		if err := minioClient.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
			return nil, fmt.Errorf("failed to set bucket policy: %w", err)
		}
		logger.Info().Str("bucket", bucket).Msg("bucket created")
	}

	return &Client{
		client:  minioClient,
		bucket:  bucket,
		baseURL: baseURL(endpoint, useSSL),
	}, nil
}

func baseURL(endpoint string, useSSL bool) string {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimSuffix(endpoint, "/")
}

// Upload stores data under objectPath and returns its public URL. It refuses
// to overwrite an existing object.
func (c *Client) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if strings.TrimSpace(objectPath) == "" {
		return "", fmt.Errorf("object name cannot be empty")
	}

	_, err := c.client.StatObject(ctx, c.bucket, objectPath, minioSDK.StatObjectOptions{})
	if err == nil {
		return "", fmt.Errorf("object %s already exists", objectPath)
	}
	if minioSDK.ToErrorResponse(err).Code != "NoSuchKey" {
		return "", fmt.Errorf("failed to stat object: %w", err)
	}

	_, err = c.client.PutObject(ctx, c.bucket, objectPath, bytes.NewReader(data), int64(len(data)), minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return c.PublicURL(objectPath), nil
}

func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, objectPath)
}
