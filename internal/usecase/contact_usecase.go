package usecase

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// MaxBirthdayWindowDays bounds the look-ahead of upcoming birthday queries.
const MaxBirthdayWindowDays = 366

// ContactInput carries the writable fields of a contact.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Birthday    time.Time
	Notes       *string
}

// ContactUsecase defines the address book operations. Every call is scoped to the owner.
type ContactUsecase interface {
	Create(ctx context.Context, userID int64, input *ContactInput) (*entity.Contact, error)
	List(ctx context.Context, userID int64, filter entity.ContactFilter) ([]*entity.Contact, error)
	Get(ctx context.Context, userID, id int64) (*entity.Contact, error)
	Update(ctx context.Context, userID, id int64, input *ContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, userID, id int64) (*entity.Contact, error)

	// UpcomingBirthdays returns contacts whose birthday falls within the next days days,
	// today included, ordered by how soon the birthday comes.
	UpcomingBirthdays(ctx context.Context, userID int64, days int) ([]*entity.Contact, error)

	// QRCode renders the contact's vCard as a PNG QR code.
	QRCode(ctx context.Context, userID, id int64) ([]byte, error)
}
