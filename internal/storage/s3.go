package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/config"
)

// s3Storage implements the FileStorage interface using an S3-compatible backend.
type s3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	baseURL       string // <endpoint>/<bucket>, path-style
	logger        zerolog.Logger
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) (FileStorage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("s3: bucket name is required")
	}

	loadOptions := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("s3: load sdk config: %w", err)
	}

	// Force path-style addressing required by most S3-compatible services (like MinIO)
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	logger.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("s3 storage initialized")

	return &s3Storage{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		baseURL:       objectBaseURL(cfg),
		logger:        logger,
	}, nil
}

// objectBaseURL is the URL prefix objects are served from.
func objectBaseURL(cfg config.S3Config) string {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
	}
	return endpoint + "/" + cfg.BucketName
}

// PutObject uploads the object and returns its path-style URL. The URL is the
// stored reference; it is only directly readable when the bucket allows
// anonymous reads. Use GeneratePresignedDownloadURL otherwise.
func (s *s3Storage) PutObject(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Msg("s3 put failed")
		return "", err
	}
	return s.baseURL + "/" + objectKey, nil
}

// DeleteObject removes an object from the S3 bucket.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Str("bucket", s.bucketName).Msg("s3 delete failed")
		return err
	}
	s.logger.Debug().Str("key", objectKey).Msg("s3 object deleted")
	return nil
}

func (s *s3Storage) KeyForURL(url string) (string, bool) {
	return trimBase(s.baseURL, url)
}

// GeneratePresignedDownloadURL creates a temporary URL for downloading (GET).
func (s *s3Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Msg("s3 presign get failed")
		return "", fmt.Errorf("s3: presign download: %w", err)
	}
	return req.URL, nil
}
