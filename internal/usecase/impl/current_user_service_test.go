package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/cache"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type currentUserFixtures struct {
	service      usecase.CurrentUserUsecase
	tokenService *mockSvc.MockTokenService
	cache        *mockSvc.MockSessionCache
	userRepo     *mockRepo.MockUserRepository
	metrics      *mockSvc.MockAuthMetrics
}

func createTestCurrentUserService(t *testing.T) currentUserFixtures {
	tokenService := mockSvc.NewMockTokenService(t)
	sessionCache := mockSvc.NewMockSessionCache(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	srv := NewCurrentUserService(CurrentUserServiceParams{
		TokenService: tokenService,
		Cache:        sessionCache,
		UserRepo:     userRepo,
		Metrics:      metrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return currentUserFixtures{
		service:      srv,
		tokenService: tokenService,
		cache:        sessionCache,
		userRepo:     userRepo,
		metrics:      metrics,
	}
}

func snapshotBytes(t *testing.T, user *entity.User) []byte {
	t.Helper()

	data, err := json.Marshal(user.Snapshot())
	require.NoError(t, err)

	return data
}

func TestCurrentUserService_Resolve_CacheHitSkipsDirectory(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()
	alice := newTestUser("alice", entity.RoleUser)

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "alice"}, nil)
	fx.cache.EXPECT().Get(ctx, "user:alice").Return(snapshotBytes(t, alice), true, nil)
	fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupHit).Return()

	user, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.HashedPassword)
	fx.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestCurrentUserService_Resolve_CacheMissQueriesDirectoryOnce(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()
	alice := newTestUser("alice", entity.RoleAdmin)

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "alice"}, nil)
	fx.cache.EXPECT().Get(ctx, "user:alice").Return(nil, false, nil)
	fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupMiss).Return()
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Once()
	fx.cache.EXPECT().
		Set(ctx, "user:alice", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Run(func(_ context.Context, _ string, value []byte, _ time.Duration) {
			var snapshot entity.UserSnapshot
			require.NoError(t, json.Unmarshal(value, &snapshot))
			assert.Equal(t, "alice", snapshot.Username)
			assert.Equal(t, entity.RoleAdmin, snapshot.Role)
			assert.NotContains(t, string(value), alice.HashedPassword)
		}).
		Return(nil)

	user, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Same(t, alice, user)
}

func TestCurrentUserService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestCurrentUserService(t)

	fx.tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, domainerrors.ErrInvalidToken)
	fx.metrics.EXPECT().RecordAuthFailure(failureInvalidToken).Return()

	user, err := fx.service.Resolve(context.Background(), "bad")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	fx.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCurrentUserService_Resolve_UnknownSubject(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "ghost"}, nil)
	fx.cache.EXPECT().Get(ctx, "user:ghost").Return(nil, false, nil)
	fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupMiss).Return()
	fx.metrics.EXPECT().RecordAuthFailure(failureUnknownSubject).Return()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Resolve(ctx, "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSubject)

	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, domainerrors.ErrInvalidToken.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, domainerrors.ErrInvalidToken.Message(), appErr.Message())
}

func TestCurrentUserService_Resolve_DirectoryFailurePropagates(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user")

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "alice"}, nil)
	fx.cache.EXPECT().Get(ctx, "user:alice").Return(nil, false, nil)
	fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupMiss).Return()
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, dbErr)

	_, err := fx.service.Resolve(ctx, "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrUnknownSubject)
	fx.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCurrentUserService_Resolve_CacheReadErrorIsMiss(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()
	alice := newTestUser("alice", entity.RoleUser)

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "alice"}, nil)
	fx.cache.EXPECT().Get(ctx, "user:alice").Return(nil, false, errors.New("redis down"))
	fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupError).Return()
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
	fx.cache.EXPECT().Set(ctx, "user:alice", mock.Anything, 5*time.Minute).Return(errors.New("redis down"))
	fx.metrics.EXPECT().RecordCacheWriteFailure().Return()

	user, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestCurrentUserService_Resolve_CorruptSnapshotIsMiss(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not json", data: []byte("{oops")},
		{name: "other user", data: []byte(`{"id":7,"username":"mallory","role":"user"}`)},
		{name: "unknown role", data: []byte(`{"id":7,"username":"alice","role":"root"}`)},
		{name: "missing id", data: []byte(`{"username":"alice","role":"user"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCurrentUserService(t)
			ctx := context.Background()
			alice := newTestUser("alice", entity.RoleUser)

			fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&entity.AccessClaims{Subject: "alice"}, nil)
			fx.cache.EXPECT().Get(ctx, "user:alice").Return(tt.data, true, nil)
			fx.metrics.EXPECT().RecordCacheLookup(service.CacheLookupCorrupt).Return()
			fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
			fx.cache.EXPECT().Set(ctx, "user:alice", mock.Anything, 5*time.Minute).Return(nil)

			user, err := fx.service.Resolve(ctx, "token")

			require.NoError(t, err)
			assert.Same(t, alice, user)
		})
	}
}

func TestCurrentUserService_Invalidate(t *testing.T) {
	fx := createTestCurrentUserService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Delete(ctx, "user:alice").Return(nil).Once()
	require.NoError(t, fx.service.Invalidate(ctx, "alice"))

	fx.cache.EXPECT().Delete(ctx, "user:bob").Return(errors.New("redis down")).Once()
	require.Error(t, fx.service.Invalidate(ctx, "bob"))
}

func TestCurrentUserService_EndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Unix(1_700_000_000, 0)
	tokens, err := auth.NewJWTServiceWithOptions(auth.JWTOptions{
		Secret:    "end-to-end-secret",
		Algorithm: "HS256",
		AccessTTL: 60 * time.Second,
		EmailTTL:  time.Hour,
		Now:       func() time.Time { return now },
	})
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	alice := newTestUser("alice", entity.RoleUser)
	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(alice, nil).Once()

	srv := NewCurrentUserService(CurrentUserServiceParams{
		TokenService: tokens,
		Cache:        cache.NewRedisSessionCache(client),
		UserRepo:     userRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	token, err := tokens.GenerateAccessToken("alice")
	require.NoError(t, err)

	first, err := srv.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Username)
	assert.True(t, mr.Exists("user:alice"))

	second, err := srv.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, second.ID)

	now = now.Add(61 * time.Second)

	_, err = srv.Resolve(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
