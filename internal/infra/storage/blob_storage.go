// Package storage writes avatar images to a gocloud.dev blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"contacts/config"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStorage implements service.AvatarStorage on top of a blob bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload streams body to key and returns the public URL of the object.
func (s *BlobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("storage key is empty")
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=300",
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}

// Params defines the dependencies of the fx constructor.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Storage

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := OpenBucket(ctx, cfg)
	if err != nil {
		return nil, err
	}

	storage := NewBlobStorage(bucket, cfg.PublicBaseURL)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	params.Logger.Info("Avatar storage ready",
		slog.String("driver", cfg.Driver),
		slog.String("bucket", cfg.Bucket),
	)

	return storage, nil
}

// OpenBucket opens the bucket selected by cfg.Driver.
func OpenBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	switch cfg.Driver {
	case constants.StorageDriverMem:
		return memblob.OpenBucket(nil), nil
	case constants.StorageDriverFile, "":
		dir, err := filepath.Abs(cfg.Bucket)
		if err != nil {
			return nil, errors.Wrap(err, "resolve avatar directory")
		}

		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrap(err, "open file bucket")
		}

		return bucket, nil
	case constants.StorageDriverGCS, constants.StorageDriverS3:
		bucket, err := blob.OpenBucket(ctx, bucketURL(cfg))
		if err != nil {
			return nil, errors.Wrapf(err, "open %s bucket", cfg.Driver)
		}

		return bucket, nil
	default:
		return nil, errors.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func bucketURL(cfg *config.StorageConfig) string {
	if cfg.Driver == constants.StorageDriverS3 && cfg.Region != "" {
		return fmt.Sprintf("s3://%s?region=%s", cfg.Bucket, cfg.Region)
	}

	return fmt.Sprintf("%s://%s", cfg.Driver, cfg.Bucket)
}
