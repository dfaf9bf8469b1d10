package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maroofsyyed/dominion1/internal/config"
)

func TestObjectBaseURL(t *testing.T) {
	assert.Equal(t, "http://minio:9000/photos",
		objectBaseURL(config.S3Config{Endpoint: "http://minio:9000/", BucketName: "photos"}))
	assert.Equal(t, "https://s3.eu-west-1.amazonaws.com/photos",
		objectBaseURL(config.S3Config{Region: "eu-west-1", BucketName: "photos"}))
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.S3Config{Region: "us-east-1"}, zerolog.Nop())
	assert.Error(t, err)
}

// Presigning is local: no request reaches the endpoint.
func TestS3Storage_PresignedDownloadURL(t *testing.T) {
	files, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "http://minio.local:9000",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BucketName:      "photos",
	}, zerolog.Nop())
	require.NoError(t, err)

	key, ok := files.KeyForURL("http://minio.local:9000/photos/profile-photos/u1/a.png")
	require.True(t, ok)
	assert.Equal(t, "profile-photos/u1/a.png", key)

	signed, err := files.GeneratePresignedDownloadURL(context.Background(), key, 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "minio.local:9000", u.Host)
	assert.Equal(t, "/photos/profile-photos/u1/a.png", u.Path)
	q := u.Query()
	assert.Equal(t, "300", q.Get("X-Amz-Expires"))
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
	assert.Contains(t, q.Get("X-Amz-Credential"), "AKIDEXAMPLE/")
}
