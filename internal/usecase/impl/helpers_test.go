package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			CacheTTL: 5 * time.Minute,
		},
		Redis: &config.RedisConfig{
			KeyPrefix: "user:",
		},
		Contacts: &config.ContactsConfig{
			MaxLimit:            100,
			DefaultBirthdayDays: 7,
		},
		Storage: &config.StorageConfig{
			MaxAvatarSize: "1KB",
		},
	}
}

func newTestUser(username string, role entity.Role) *entity.User {
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:             42,
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "$2a$04$digest",
		Confirmed:      true,
		Role:           role,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

// expectTransaction makes txManager run its callback against a factory
// that hands out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if userRepo != nil {
				factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
			}
			if contactRepo != nil {
				factory.EXPECT().NewContactRepository().Return(contactRepo).Maybe()
			}

			return fn(factory)
		})
}
