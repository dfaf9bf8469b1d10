package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DefaultPresignedURLExpiry is how long a signed download URL stays valid.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// PutObject uploads body under objectKey and returns the URL the object
	// can be fetched from.
	PutObject(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error

	// KeyForURL reverses PutObject's URL. ok is false for URLs this storage
	// did not produce.
	KeyForURL(url string) (key string, ok bool)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests on a private object.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// Error constants for storage layer
var (
	ErrObjectNotFound = errors.New("object not found in storage")
)

// memoryStorage keeps objects in a map.
type memoryStorage struct {
	mu      sync.Mutex
	baseURL string
	objects map[string]Object
}

// Object is a stored blob.
type Object struct {
	ContentType string
	Data        []byte
}

// MemoryStorage is a FileStorage that also exposes its contents.
type MemoryStorage interface {
	FileStorage
	Get(objectKey string) (Object, bool)
}

// NewMemoryStorage returns an in-process FileStorage whose URLs start with baseURL.
func NewMemoryStorage(baseURL string) MemoryStorage {
	return &memoryStorage{baseURL: strings.TrimSuffix(baseURL, "/"), objects: map[string]Object{}}
}

func (m *memoryStorage) PutObject(_ context.Context, objectKey, contentType string, body io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = Object{ContentType: contentType, Data: data}
	return m.baseURL + "/" + objectKey, nil
}

func (m *memoryStorage) DeleteObject(_ context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[objectKey]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, objectKey)
	return nil
}

func (m *memoryStorage) KeyForURL(url string) (string, bool) {
	return trimBase(m.baseURL, url)
}

// GeneratePresignedDownloadURL returns the object URL with the expiry as a
// query parameter. It fails for unknown keys.
func (m *memoryStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[objectKey]; !ok {
		return "", ErrObjectNotFound
	}
	return fmt.Sprintf("%s/%s?expires=%d", m.baseURL, objectKey, int(expires.Seconds())), nil
}

func (m *memoryStorage) Get(objectKey string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[objectKey]
	return o, ok
}

func trimBase(base, url string) (string, bool) {
	prefix := base + "/"
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
