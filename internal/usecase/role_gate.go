package usecase

import (
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
)

// Authorize returns the user when it holds the required role.
// Missing users and unknown roles are rejected the same way as insufficient ones.
func Authorize(user *entity.User, required entity.Role) (*entity.User, error) {
	if user == nil || !user.Role.IsValid() || user.Role != required {
		return nil, domainerrors.ErrForbidden
	}

	return user, nil
}
