package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Blob kinds. A blob's ref is "<kind>/<company row id>.json".
const (
	KindDocument = "documents"
	KindReport   = "reports"
)

// BlobRef returns the storage-relative reference of a blob.
func BlobRef(kind, id string) string {
	return kind + "/" + id + ".json"
}

// StorageClient abstracts blob storage for input documents and computed
// reports.
type StorageClient interface {
	PutDocument(ctx context.Context, id string, data []byte) error
	GetDocument(ctx context.Context, id string) ([]byte, error)
	PutReport(ctx context.Context, id string, data []byte) error
	GetReport(ctx context.Context, id string) ([]byte, error)
	// Delete removes both blobs of a company. Missing blobs are not an error.
	Delete(ctx context.Context, id string) error
}

// StorageConfig selects and configures a storage backend.
type StorageConfig struct {
	Backend   string // local (default), s3 or gcs
	LocalPath string
	GCSBucket string
	S3        S3Config
}

// StorageConfigFromEnv reads STORAGE_BACKEND, LOCAL_STORAGE_PATH, GCS_BUCKET
// and the S3_* variables.
func StorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Backend:   os.Getenv("STORAGE_BACKEND"),
		LocalPath: os.Getenv("LOCAL_STORAGE_PATH"),
		GCSBucket: os.Getenv("GCS_BUCKET"),
		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    os.Getenv("S3_REGION"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}
}

// NewStorage creates the StorageClient described by cfg.
func NewStorage(ctx context.Context, cfg StorageConfig) (StorageClient, error) {
	switch cfg.Backend {
	case "", "local":
		path := cfg.LocalPath
		if path == "" {
			path = filepath.Join(os.TempDir(), "esgbuddy-data")
		}
		return NewLocalStorage(path), nil
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("gcs storage: GCS_BUCKET is required")
		}
		return NewGCSStorage(ctx, cfg.GCSBucket)
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 storage: S3_BUCKET is required")
		}
		return NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(kind, id string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(BlobRef(kind, id)))
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutDocument stores an input document blob.
func (s *LocalStorage) PutDocument(ctx context.Context, id string, data []byte) error {
	return s.put(s.path(KindDocument, id), data)
}

// GetDocument retrieves an input document blob.
func (s *LocalStorage) GetDocument(ctx context.Context, id string) ([]byte, error) {
	return os.ReadFile(s.path(KindDocument, id))
}

// PutReport stores a computed report blob.
func (s *LocalStorage) PutReport(ctx context.Context, id string, data []byte) error {
	return s.put(s.path(KindReport, id), data)
}

// GetReport retrieves a computed report blob.
func (s *LocalStorage) GetReport(ctx context.Context, id string) ([]byte, error) {
	return os.ReadFile(s.path(KindReport, id))
}

func (s *LocalStorage) Delete(ctx context.Context, id string) error {
	for _, kind := range []string{KindDocument, KindReport} {
		if err := os.Remove(s.path(kind, id)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", BlobRef(kind, id), err)
		}
	}
	return nil
}
