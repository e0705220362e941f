package repository

import (
	"context"
	"errors"

	"contacts/internal/domain/entity"
)

// ErrContactNotFound is returned when a contact does not exist or belongs to another user.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository persists contacts. Every method is scoped to an owner.
type ContactRepository interface {
	List(ctx context.Context, userID int64, filter entity.ContactFilter) ([]*entity.Contact, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.Contact, error)

	// ExistsByEmailOrPhone reports whether another contact of the owner already uses
	// the email or phone number. excludeID skips the contact being updated; pass 0 on create.
	ExistsByEmailOrPhone(ctx context.Context, userID int64, email, phone string, excludeID int64) (bool, error)

	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, userID, id int64) error

	// FindByBirthdays returns the owner's contacts born on any of the given days.
	FindByBirthdays(ctx context.Context, userID int64, days []entity.MonthDay) ([]*entity.Contact, error)
}
