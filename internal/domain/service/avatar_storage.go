package service

import (
	"context"
	"io"
)

// AvatarStorage stores avatar images and returns the URL they are served from.
type AvatarStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
