package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const (
	// ImageBucket stores avatars and cover images. Public read, the
	// URLs are embedded in user documents and served directly.
	ImageBucket = "vidtube-images"
)

var client *minio.Client

// Init creates the MinIO client and ensures all buckets exist.
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, bucket := range cfg.Buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
			logger.Info("MinIO bucket created", zap.String("bucket", bucket))
		}
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, ImageBucket)
	if err := client.SetBucketPolicy(ctx, ImageBucket, policy); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", ImageBucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("buckets", len(cfg.Buckets)),
	)

	return nil
}

// Get returns the MinIO client instance.
func Get() *minio.Client {
	return client
}

// ImageStore uploads user images to the public image bucket.
type ImageStore struct {
	endpoint string
	useSSL   bool
}

// NewImageStore returns an uploader bound to the configured endpoint.
func NewImageStore(cfg *config.MinIOConfig) *ImageStore {
	return &ImageStore{endpoint: cfg.Endpoint, useSSL: cfg.UseSSL}
}

// UploadImage stores an image object and returns its public URL.
func (s *ImageStore) UploadImage(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := client.PutObject(ctx, ImageBucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, ImageBucket, objectName), nil
}
