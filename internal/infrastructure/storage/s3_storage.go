// Package storage keeps uploaded media either in an S3-compatible bucket or
// on local disk.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dicky/portfolio/internal/application/media"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Uploaded keys embed a random name, so objects never change in place.
const immutableCacheControl = "public, max-age=31536000, immutable"

var _ media.ObjectStorage = (*S3ObjectStorage)(nil)

// S3ObjectStorage stores media in an S3-compatible bucket (AWS S3, MinIO,
// Cloudflare R2)
type S3ObjectStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// S3ObjectStorageOption configures S3ObjectStorage
type S3ObjectStorageOption func(*S3ObjectStorage)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) S3ObjectStorageOption {
	return func(s *S3ObjectStorage) { s.logger = logger }
}

// NewS3ObjectStorage creates a bucket client. Static keys are used when
// configured; otherwise the SDK's default credential chain applies. An
// empty endpoint means AWS itself.
func NewS3ObjectStorage(cfg *config.StorageConfig, opts ...S3ObjectStorageOption) (*S3ObjectStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return nil, errors.New("storage access key and secret key must be set together")
	}

	endpoint, err := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	s := &S3ObjectStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBase(cfg, endpoint, region),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// normalizeEndpoint adds a scheme to bare host:port endpoints
func normalizeEndpoint(endpoint string, useSSL bool) (string, error) {
	if endpoint == "" {
		return "", nil
	}
	if !strings.Contains(endpoint, "://") {
		scheme := "http://"
		if useSSL {
			scheme = "https://"
		}
		endpoint = scheme + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid storage endpoint %q", endpoint)
	}
	return strings.TrimRight(endpoint, "/"), nil
}

// publicBase picks where browsers load objects from: the configured public
// URL, the custom endpoint, or the AWS virtual-hosted bucket address.
func publicBase(cfg *config.StorageConfig, endpoint, region string) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case endpoint != "" && cfg.UsePathStyle:
		return endpoint + "/" + cfg.Bucket
	case endpoint != "":
		u, _ := url.Parse(endpoint)
		return u.Scheme + "://" + cfg.Bucket + "." + u.Host
	default:
		return "https://" + cfg.Bucket + ".s3." + region + ".amazonaws.com"
	}
}

// EnsureBucket creates the bucket when it does not exist yet
func (s *S3ObjectStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Media bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Upload writes data under storageKey. The body is seekable so the SDK can
// sign the payload over plain HTTP endpoints.
func (s *S3ObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(storageKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(immutableCacheControl),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", storageKey, err)
	}
	return nil
}

// DeleteObject removes an object. Deleting a missing key succeeds.
func (s *S3ObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", storageKey, err)
	}
	return nil
}

// PublicURL returns the address browsers load the object from
func (s *S3ObjectStorage) PublicURL(storageKey string) string {
	return s.baseURL + "/" + storageKey
}

// Bucket returns the bucket name
func (s *S3ObjectStorage) Bucket() string {
	return s.bucket
}
