package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service     usecase.UserUsecase
	userRepo    *mockRepo.MockUserRepository
	storage     *mockSvc.MockAvatarStorage
	currentUser *mockUsecase.MockCurrentUserUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		storage:     mockSvc.NewMockAvatarStorage(t),
		currentUser: mockUsecase.NewMockCurrentUserUsecase(t),
	}

	srv, err := NewUserService(UserServiceParams{
		UserRepo:    f.userRepo,
		Storage:     f.storage,
		CurrentUser: f.currentUser,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	f.service = srv

	return f
}

func avatarInput(body string) *usecase.AvatarInput {
	return &usecase.AvatarInput{
		Filename:    "Me.PNG",
		ContentType: "image/png",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestUserService_UpdateAvatar_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	admin := newTestUser("root", entity.RoleAdmin)
	url := "http://localhost:8000/static/avatars/root-x.png"
	updated := newTestUser("root", entity.RoleAdmin)
	updated.Avatar = &url

	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "avatars/root-") && strings.HasSuffix(key, ".png") &&
				len(key) == len("avatars/root-")+avatarChecksumLen+len(".png")
		}), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) (string, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))

			return url, nil
		})
	fx.userRepo.EXPECT().UpdateAvatar(ctx, admin.Email, url).Return(updated, nil)
	fx.currentUser.EXPECT().Invalidate(ctx, "root").Return(nil)

	user, err := fx.service.UpdateAvatar(ctx, admin, avatarInput("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, url, *user.Avatar)
}

func TestUserService_UpdateAvatar_Rejections(t *testing.T) {
	admin := newTestUser("root", entity.RoleAdmin)

	tests := []struct {
		name    string
		user    *entity.User
		input   *usecase.AvatarInput
		wantErr error
	}{
		{
			name:    "regular user",
			user:    newTestUser("alice", entity.RoleUser),
			input:   avatarInput("png"),
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "not an image",
			user: admin,
			input: &usecase.AvatarInput{
				Filename: "notes.txt", ContentType: "text/plain", Size: 3, Body: strings.NewReader("abc"),
			},
			wantErr: domainerrors.ErrAvatarInvalid,
		},
		{
			name: "declared size too large",
			user: admin,
			input: &usecase.AvatarInput{
				Filename: "a.png", ContentType: "image/png", Size: 4096, Body: strings.NewReader("abc"),
			},
			wantErr: domainerrors.ErrAvatarTooLarge,
		},
		{
			name: "body larger than declared",
			user: admin,
			input: &usecase.AvatarInput{
				Filename: "a.png", ContentType: "image/png", Size: 10, Body: bytes.NewReader(make([]byte, 2048)),
			},
			wantErr: domainerrors.ErrAvatarTooLarge,
		},
		{
			name: "empty body",
			user: admin,
			input: &usecase.AvatarInput{
				Filename: "a.png", ContentType: "image/png", Body: strings.NewReader(""),
			},
			wantErr: domainerrors.ErrAvatarInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.UpdateAvatar(context.Background(), tt.user, tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateAvatar_StorageFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/png", mock.Anything).Return("", errors.New("bucket gone"))

	_, err := fx.service.UpdateAvatar(ctx, newTestUser("root", entity.RoleAdmin), avatarInput("png"))

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestAvatarExtension(t *testing.T) {
	assert.Equal(t, ".jpg", avatarExtension(&usecase.AvatarInput{Filename: "face.JPG", ContentType: "image/jpeg"}))
	assert.Equal(t, ".png", avatarExtension(&usecase.AvatarInput{ContentType: "image/png"}))
}

func TestAuthorize(t *testing.T) {
	admin := newTestUser("root", entity.RoleAdmin)
	user, err := usecase.Authorize(admin, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Same(t, admin, user)

	_, err = usecase.Authorize(newTestUser("alice", entity.RoleUser), entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	malformed := newTestUser("eve", entity.Role("ADMIN "))
	_, err = usecase.Authorize(malformed, entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = usecase.Authorize(nil, entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
