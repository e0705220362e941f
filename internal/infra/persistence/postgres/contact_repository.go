package postgres

import (
	"context"
	"strings"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository returns a GORM-backed ContactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// List returns the owner's contacts matching the case-insensitive substring filters, ordered by ID.
func (repo *contactRepository) List(ctx context.Context, userID int64, filter entity.ContactFilter) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.FirstName != "" {
		query = query.Where("first_name ILIKE ?", containsPattern(filter.FirstName))
	}
	if filter.LastName != "" {
		query = query.Where("last_name ILIKE ?", containsPattern(filter.LastName))
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", containsPattern(filter.Email))
	}

	var contactMs []*model.ContactModel
	err := query.Order("id").Offset(filter.Skip).Limit(filter.Limit).Find(&contactMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contacts")
	}

	return toContactDomains(contactMs), nil
}

func (repo *contactRepository) FindByID(ctx context.Context, userID, id int64) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contact")
	}

	return toContactDomain(&contactM), nil
}

func (repo *contactRepository) ExistsByEmailOrPhone(ctx context.Context, userID int64, email, phone string, excludeID int64) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("user_id = ? AND (email = ? OR phone_number = ?)", userID, email, phone)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check contact existence")
	}

	return count > 0, nil
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrContactAlreadyExists.WrapMessage("duplicate contact")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("contact owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Update overwrites every editable field of an owned contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]any{
			"first_name":   contact.FirstName,
			"last_name":    contact.LastName,
			"email":        contact.Email,
			"phone_number": contact.PhoneNumber,
			"birthday":     contact.Birthday,
			"notes":        contact.Notes,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrContactAlreadyExists.WrapMessage("duplicate contact")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// FindByBirthdays matches (month, day) pairs with a row-value IN list.
func (repo *contactRepository) FindByBirthdays(ctx context.Context, userID int64, days []entity.MonthDay) ([]*entity.Contact, error) {
	if len(days) == 0 {
		return []*entity.Contact{}, nil
	}

	pairs := make([][]any, 0, len(days))
	for _, d := range days {
		pairs = append(pairs, []any{int(d.Month), d.Day})
	}

	var contactMs []*model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(EXTRACT(MONTH FROM birthday)::int, EXTRACT(DAY FROM birthday)::int) IN ?", pairs).
		Order("id").
		Find(&contactMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contacts by birthday")
	}

	return toContactDomains(contactMs), nil
}

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)

	return "%" + escaped + "%"
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:          m.ID,
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Birthday:    m.Birthday,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toContactDomains(ms []*model.ContactModel) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, len(ms))
	for _, m := range ms {
		contacts = append(contacts, toContactDomain(m))
	}

	return contacts
}

func fromContactDomain(c *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:          c.ID,
		UserID:      c.UserID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Birthday:    c.Birthday,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
