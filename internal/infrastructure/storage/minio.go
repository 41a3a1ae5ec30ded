package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"b2b-showcase-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PlaceholderImageURL is used for product creation when an image upload
// fails or no image was supplied. Product creation must not abort on a
// hosting failure.
const PlaceholderImageURL = "https://via.placeholder.com/300x300?text=Product+Image"

// ImageHost is the image hosting contract: upload a file into a folder,
// get back a public URL.
type ImageHost interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
	Replace(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

// MinIOStorage hosts catalog images on MinIO.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage khởi tạo MinIO client.
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false cho local, true cho production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Kiểm tra bucket có tồn tại không, nếu không thì tạo mới
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload stores data under <folder>/<filename> and returns the public URL.
// Format: http://localhost:9000/b2b-showcase/products/hdpe.jpg
func (s *MinIOStorage) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	key := path.Join(folder, filename)
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)

	return url, nil
}

// Replace overwrites the object at <folder>/<filename>. Object storage
// puts are upserts, so this is Upload under a stable key; callers pair
// it with a cache-busting token so browsers pick up the new bytes.
func (s *MinIOStorage) Replace(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	return s.Upload(ctx, folder, filename, data, contentType)
}

// Delete xóa một file khỏi MinIO.
func (s *MinIOStorage) Delete(ctx context.Context, folder, filename string) error {
	key := path.Join(folder, filename)
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
