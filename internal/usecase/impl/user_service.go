package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"
	"contacts/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	avatarKeyPrefix   = "avatars/"
	avatarChecksumLen = 12
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	storage       service.AvatarStorage
	currentUser   usecase.CurrentUserUsecase
	maxAvatarSize int64
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Storage     service.AvatarStorage
	CurrentUser usecase.CurrentUserUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	maxAvatarSize, err := util.ParseBytes(params.Config.Storage.MaxAvatarSize)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage.maxAvatarSize")
	}

	return &userService{
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		currentUser:   params.CurrentUser,
		maxAvatarSize: maxAvatarSize,
		logger:        params.Logger,
	}, nil
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateAvatar stores a new avatar image for an admin and records its public URL.
func (srv *userService) UpdateAvatar(ctx context.Context, user *entity.User, input *usecase.AvatarInput) (*entity.User, error) {
	if _, err := usecase.Authorize(user, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(strings.ToLower(input.ContentType), "image/") {
		return nil, domainerrors.ErrAvatarInvalid
	}

	if input.Size > srv.maxAvatarSize {
		return nil, domainerrors.ErrAvatarTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, srv.maxAvatarSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read avatar")
	}
	if int64(len(data)) > srv.maxAvatarSize {
		return nil, domainerrors.ErrAvatarTooLarge
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrAvatarInvalid.WrapMessage("empty avatar")
	}

	checksum, err := util.ChecksumReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to checksum avatar")
	}

	key := avatarKeyPrefix + user.Username + "-" + checksum[:avatarChecksumLen] + avatarExtension(input)

	url, err := srv.storage.Upload(ctx, key, input.ContentType, bytes.NewReader(data))
	if err != nil {
		srv.log(ctx).Error("Avatar upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	updated, err := srv.userRepo.UpdateAvatar(ctx, user.Email, url)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update avatar")
	}

	if err := srv.currentUser.Invalidate(ctx, user.Username); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached user", slog.String("username", user.Username), slog.Any("error", err))
	}

	srv.log(ctx).Info("Avatar updated", slog.Int64("userID", updated.ID), slog.String("url", url))

	return updated, nil
}

func avatarExtension(input *usecase.AvatarInput) string {
	if ext := strings.ToLower(filepath.Ext(input.Filename)); ext != "" {
		return ext
	}

	if exts, err := mime.ExtensionsByType(input.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
