package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	qrCode      service.QRCodeService
	maxLimit    int
	now         func() time.Time
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger

	// Now overrides the clock used for birthday windows.
	Now func() time.Time `optional:"true"`
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		qrCode:      params.QRCode,
		maxLimit:    params.Config.Contacts.MaxLimit,
		now:         now,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a contact unless the owner already has one with the same email or phone number.
func (srv *contactService) Create(ctx context.Context, userID int64, input *usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{UserID: userID}
	applyContactInput(contact, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		if err := ensureUniqueContact(ctx, contactRepo, contact); err != nil {
			return err
		}

		if err := contactRepo.Create(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to create contact")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute contact creation transaction")
	}

	srv.log(ctx).Info("Contact created", slog.Int64("userID", userID), slog.Int64("contactID", contact.ID))

	return contact, nil
}

// List returns the owner's contacts filtered by substring, with skip and limit clamped to sane bounds.
func (srv *contactService) List(ctx context.Context, userID int64, filter entity.ContactFilter) ([]*entity.Contact, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 || filter.Limit > srv.maxLimit {
		filter.Limit = srv.maxLimit
	}

	contacts, err := srv.contactRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

func (srv *contactService) Get(ctx context.Context, userID, id int64) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapContactError(err)
	}

	return contact, nil
}

// Update replaces every editable field of an owned contact.
func (srv *contactService) Update(ctx context.Context, userID, id int64, input *usecase.ContactInput) (*entity.Contact, error) {
	var updated *entity.Contact

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		contact, err := contactRepo.FindByID(ctx, userID, id)
		if err != nil {
			return mapContactError(err)
		}

		applyContactInput(contact, input)

		if err := ensureUniqueContact(ctx, contactRepo, contact); err != nil {
			return err
		}

		if err := contactRepo.Update(ctx, contact); err != nil {
			return mapContactError(err)
		}

		updated, err = contactRepo.FindByID(ctx, userID, id)
		if err != nil {
			return mapContactError(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute contact update transaction")
	}

	return updated, nil
}

// Delete removes an owned contact and returns it as it was.
func (srv *contactService) Delete(ctx context.Context, userID, id int64) (*entity.Contact, error) {
	var deleted *entity.Contact

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		contact, err := contactRepo.FindByID(ctx, userID, id)
		if err != nil {
			return mapContactError(err)
		}

		if err := contactRepo.Delete(ctx, userID, id); err != nil {
			return mapContactError(err)
		}
		deleted = contact

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute contact deletion transaction")
	}

	srv.log(ctx).Info("Contact deleted", slog.Int64("userID", userID), slog.Int64("contactID", id))

	return deleted, nil
}

// UpcomingBirthdays returns contacts celebrating within [today, today+days], soonest first.
func (srv *contactService) UpcomingBirthdays(ctx context.Context, userID int64, days int) ([]*entity.Contact, error) {
	if days < 1 || days > usecase.MaxBirthdayWindowDays {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("days must be between 1 and 366")
	}

	today := srv.now()

	contacts, err := srv.contactRepo.FindByBirthdays(ctx, userID, birthdayWindow(today, days))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming birthdays")
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		di := daysUntilBirthday(today, contacts[i].Birthday)
		dj := daysUntilBirthday(today, contacts[j].Birthday)
		if di != dj {
			return di < dj
		}

		return contacts[i].ID < contacts[j].ID
	})

	return contacts, nil
}

// QRCode renders the contact's vCard as a PNG QR code.
func (srv *contactService) QRCode(ctx context.Context, userID, id int64) ([]byte, error) {
	contact, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateContactQR(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR code")
	}

	return png, nil
}

func ensureUniqueContact(ctx context.Context, contactRepo repository.ContactRepository, contact *entity.Contact) error {
	exists, err := contactRepo.ExistsByEmailOrPhone(ctx, contact.UserID, contact.Email, contact.PhoneNumber, contact.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check duplicate contacts")
	}
	if exists {
		return domainerrors.ErrContactAlreadyExists.WrapMessage(
			"contact with email " + contact.Email + " or phone " + contact.PhoneNumber + " already exists",
		)
	}

	return nil
}

func applyContactInput(contact *entity.Contact, input *usecase.ContactInput) {
	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.PhoneNumber = input.PhoneNumber
	contact.Birthday = input.Birthday
	contact.Notes = input.Notes
}

func mapContactError(err error) error {
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrContactNotFound
	}

	return err
}
