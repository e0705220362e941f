package usecase

import (
	"context"
	"io"

	"contacts/internal/domain/entity"
)

// AvatarInput is an uploaded avatar image.
type AvatarInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UserUsecase defines operations on the authenticated user's own account.
type UserUsecase interface {
	UpdateAvatar(ctx context.Context, user *entity.User, input *AvatarInput) (*entity.User, error)
}
