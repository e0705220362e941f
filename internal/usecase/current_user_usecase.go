package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// CurrentUserUsecase resolves bearer tokens to users through the session cache.
type CurrentUserUsecase interface {
	// Resolve validates the token and returns its user. Invalid tokens and
	// vanished subjects fail with a 401, directory failures with a 500.
	Resolve(ctx context.Context, token string) (*entity.User, error)

	// Invalidate drops the cached snapshot of a user after it changed.
	Invalidate(ctx context.Context, username string) error
}
