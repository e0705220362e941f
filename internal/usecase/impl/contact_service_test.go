package impl

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	txManager   *mockRepo.MockTransactionManager
	contactRepo *mockRepo.MockContactRepository
	qrCode      *mockSvc.MockQRCodeService
}

func createTestContactService(t *testing.T, now time.Time) contactServiceFixtures {
	f := contactServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewContactService(ContactServiceParams{
		TxManager:   f.txManager,
		ContactRepo: f.contactRepo,
		QRCode:      f.qrCode,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
		Now:         func() time.Time { return now },
	})

	return f
}

func newContactInput() *usecase.ContactInput {
	return &usecase.ContactInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+441234567890",
		Birthday:    date(1815, time.December, 10),
	}
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		txRepo.EXPECT().ExistsByEmailOrPhone(ctx, int64(1), "ada@example.com", "+441234567890", int64(0)).Return(false, nil)
		txRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Contact")).
			Run(func(_ context.Context, c *entity.Contact) { c.ID = 11 }).
			Return(nil)

		contact, err := fx.service.Create(ctx, 1, newContactInput())

		require.NoError(t, err)
		assert.Equal(t, int64(11), contact.ID)
		assert.Equal(t, int64(1), contact.UserID)
		assert.Equal(t, "Lovelace", contact.LastName)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		txRepo.EXPECT().ExistsByEmailOrPhone(ctx, int64(1), "ada@example.com", "+441234567890", int64(0)).Return(true, nil)

		_, err := fx.service.Create(ctx, 1, newContactInput())

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrContactAlreadyExists)
	})
}

func TestContactService_List_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	fx := createTestContactService(t, time.Now())

	fx.contactRepo.EXPECT().
		List(ctx, int64(1), entity.ContactFilter{FirstName: "ad", Skip: 0, Limit: 100}).
		Return([]*entity.Contact{{ID: 1}}, nil).Once()
	fx.contactRepo.EXPECT().
		List(ctx, int64(1), entity.ContactFilter{Skip: 5, Limit: 10}).
		Return([]*entity.Contact{}, nil).Once()

	contacts, err := fx.service.List(ctx, 1, entity.ContactFilter{FirstName: "ad", Skip: -3, Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	contacts, err = fx.service.List(ctx, 1, entity.ContactFilter{Skip: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	fx := createTestContactService(t, time.Now())

	fx.contactRepo.EXPECT().FindByID(ctx, int64(1), int64(99)).Return(nil, repository.ErrContactNotFound)

	_, err := fx.service.Get(ctx, 1, 99)

	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns fresh row", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		existing := &entity.Contact{ID: 5, UserID: 1, FirstName: "Old", Email: "old@example.com"}
		fresh := &entity.Contact{ID: 5, UserID: 1, FirstName: "Ada", Email: "ada@example.com"}

		txRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(existing, nil).Once()
		txRepo.EXPECT().ExistsByEmailOrPhone(ctx, int64(1), "ada@example.com", "+441234567890", int64(5)).Return(false, nil)
		txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.ID == 5 && c.FirstName == "Ada" && c.Email == "ada@example.com"
		})).Return(nil)
		txRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(fresh, nil).Once()

		contact, err := fx.service.Update(ctx, 1, 5, newContactInput())

		require.NoError(t, err)
		assert.Same(t, fresh, contact)
	})

	t.Run("not owned", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		txRepo.EXPECT().FindByID(ctx, int64(2), int64(5)).Return(nil, repository.ErrContactNotFound)

		_, err := fx.service.Update(ctx, 2, 5, newContactInput())

		assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})

	t.Run("clashes with another contact", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		txRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(&entity.Contact{ID: 5, UserID: 1}, nil)
		txRepo.EXPECT().ExistsByEmailOrPhone(ctx, int64(1), "ada@example.com", "+441234567890", int64(5)).Return(true, nil)

		_, err := fx.service.Update(ctx, 1, 5, newContactInput())

		assert.ErrorIs(t, err, domainerrors.ErrContactAlreadyExists)
	})
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deleted contact", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		existing := &entity.Contact{ID: 5, UserID: 1, FirstName: "Ada"}
		txRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(existing, nil)
		txRepo.EXPECT().Delete(ctx, int64(1), int64(5)).Return(nil)

		contact, err := fx.service.Delete(ctx, 1, 5)

		require.NoError(t, err)
		assert.Same(t, existing, contact)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestContactService(t, time.Now())
		txRepo := mockRepo.NewMockContactRepository(t)
		expectTransaction(t, fx.txManager, nil, txRepo)

		txRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(nil, repository.ErrContactNotFound)

		_, err := fx.service.Delete(ctx, 1, 5)

		assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})
}

func TestContactService_UpcomingBirthdays(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, time.December, 30, 15, 0, 0, 0, time.UTC)

	t.Run("orders by nearest birthday across new year", func(t *testing.T) {
		fx := createTestContactService(t, today)

		newYear := &entity.Contact{ID: 1, Birthday: date(1990, time.January, 1)}
		todayBorn := &entity.Contact{ID: 2, Birthday: date(1985, time.December, 30)}
		tomorrow := &entity.Contact{ID: 3, Birthday: date(2000, time.December, 31)}

		fx.contactRepo.EXPECT().
			FindByBirthdays(ctx, int64(1), birthdayWindow(today, 7)).
			Return([]*entity.Contact{newYear, todayBorn, tomorrow}, nil)

		contacts, err := fx.service.UpcomingBirthdays(ctx, 1, 7)

		require.NoError(t, err)
		assert.Equal(t, []*entity.Contact{todayBorn, tomorrow, newYear}, contacts)
	})

	t.Run("rejects out of range windows", func(t *testing.T) {
		fx := createTestContactService(t, today)

		_, err := fx.service.UpcomingBirthdays(ctx, 1, 0)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = fx.service.UpcomingBirthdays(ctx, 1, 367)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestContactService(t, today)
		fx.contactRepo.EXPECT().FindByBirthdays(ctx, int64(1), mock.Anything).Return(nil, errors.New("db down"))

		_, err := fx.service.UpcomingBirthdays(ctx, 1, 7)
		require.Error(t, err)
	})
}

func TestContactService_QRCode(t *testing.T) {
	ctx := context.Background()
	fx := createTestContactService(t, time.Now())
	contact := &entity.Contact{ID: 5, UserID: 1, FirstName: "Ada"}

	fx.contactRepo.EXPECT().FindByID(ctx, int64(1), int64(5)).Return(contact, nil)
	fx.qrCode.EXPECT().GenerateContactQR(contact).Return([]byte("png"), nil)

	png, err := fx.service.QRCode(ctx, 1, 5)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
