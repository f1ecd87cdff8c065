package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"moviehub-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterStorage holds movie poster images in an S3-compatible bucket.
// Clients upload directly through short-lived presigned PUT URLs; the
// service never proxies image bytes.
type PosterStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

const presignExpiry = 15 * time.Minute

func NewPosterStorage(cfg *config.MinIOConfig, logger *logrus.Logger) (*PosterStorage, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	storage := &PosterStorage{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := storage.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to prepare poster bucket, continuing anyway")
	}

	return storage, nil
}

func (s *PosterStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)
	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Poster bucket created with public read policy")
	return nil
}

// PresignUpload returns a presigned PUT URL for a poster upload and the
// public URL the object will have afterwards. Filenames are de-duplicated
// with a short random suffix.
func (s *PosterStorage) PresignUpload(ctx context.Context, filename string) (uploadURL, publicURL string, err error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectName := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)

	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presigned.String(), s.publicURL + "/" + objectName, nil
}

// Remove deletes a poster object. Accepts either a bare object name or a
// full public URL.
func (s *PosterStorage) Remove(ctx context.Context, object string) error {
	if idx := strings.LastIndex(object, "/"); idx != -1 {
		object = object[idx+1:]
	}

	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("object", object).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete poster: %w", err)
	}
	return nil
}
