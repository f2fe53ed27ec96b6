package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/config"
	"restaurant-hub/internal/model"
)

// s3Uploader implements Uploader on top of an S3 bucket.
type s3Uploader struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
	logger  zerolog.Logger
}

// NewS3Uploader creates an S3-backed uploader from storage configuration.
func NewS3Uploader(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (Uploader, error) {
	logger = logger.With().Str("component", "s3-uploader").Logger()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("prefix", cfg.Prefix).
		Msg("S3 uploader initialised")

	return &s3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Upload stores the file under prefix/folder/<uuid><ext> and returns
// the public URL plus the object key as the public ID.
func (u *s3Uploader) Upload(ctx context.Context, body io.Reader, filename, folder string) (*model.UploadResult, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := u.prefix + folder + "/" + uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	start := time.Now()
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Error().
			Err(err).
			Str("bucket", u.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return nil, fmt.Errorf("failed to upload %s to S3: %w", filename, err)
	}

	u.logger.Info().
		Str("key", key).
		Str("content_type", contentType).
		Dur("duration", time.Since(start)).
		Msg("object uploaded to S3")

	return &model.UploadResult{
		URL:      u.baseURL + "/" + key,
		PublicID: key,
	}, nil
}

// Delete removes the object with the given key. Failures are logged
// and reported as false.
func (u *s3Uploader) Delete(ctx context.Context, publicID string) bool {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		u.logger.Error().
			Err(err).
			Str("bucket", u.bucket).
			Str("key", publicID).
			Msg("failed to delete object from S3")
		return false
	}

	u.logger.Info().Str("key", publicID).Msg("object deleted from S3")
	return true
}
