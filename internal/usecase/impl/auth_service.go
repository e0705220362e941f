package impl

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	tokenTypeBearer = "bearer"
	gravatarBaseURL = "https://www.gravatar.com/avatar/"
	decoyPassword   = "contacts-login-decoy"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailTokens  usecase.EmailTokenUsecase
	publisher    service.EventPublisher
	currentUser  usecase.CurrentUserUsecase
	logger       *slog.Logger

	// decoyDigest is compared on unknown usernames so every failed login pays
	// the same hashing cost.
	decoyDigest func() string
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailTokens  usecase.EmailTokenUsecase
	Publisher    service.EventPublisher
	CurrentUser  usecase.CurrentUserUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailTokens:  params.EmailTokens,
		publisher:    params.Publisher,
		currentUser:  params.CurrentUser,
		logger:       params.Logger,
	}
	srv.decoyDigest = sync.OnceValue(func() string {
		digest, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			return ""
		}

		return digest
	})

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unconfirmed account and mails a confirmation link.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if err := checkPasswordLength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashedPassword,
		Role:           entity.RoleUser,
		Avatar:         gravatarURL(input.Email),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check existing accounts")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.sendConfirmation(ctx, newUser, input.BaseURL)

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Login verifies the credentials of a confirmed account and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AccessToken, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.decoyDigest())
			srv.log(ctx).Warn("Login attempt for unknown user", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, domainerrors.ErrEmailNotConfirmed
	}

	token, err := srv.tokenService.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &entity.AccessToken{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

// ConfirmEmail marks the address named by a confirmation token as confirmed.
func (srv *authService) ConfirmEmail(ctx context.Context, token string) (string, error) {
	email, err := srv.emailTokens.ExtractEmail(token)
	if err != nil {
		return "", err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrVerificationFailed
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	if user.Confirmed {
		return usecase.MessageEmailAlreadyConfirmed, nil
	}

	if err := srv.userRepo.ConfirmEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrVerificationFailed
		}

		return "", errors.Wrap(err, "failed to confirm email")
	}

	srv.invalidate(ctx, user.Username)

	return usecase.MessageEmailConfirmed, nil
}

// RequestEmail resends the confirmation link. Unknown addresses get the same answer as known ones.
func (srv *authService) RequestEmail(ctx context.Context, email, baseURL string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return usecase.MessageCheckEmail, nil
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	if user.Confirmed {
		return usecase.MessageEmailAlreadyConfirmed, nil
	}

	srv.sendConfirmation(ctx, user, baseURL)

	return usecase.MessageCheckEmail, nil
}

// RequestPasswordReset mails a link that, once followed, installs the new password.
func (srv *authService) RequestPasswordReset(ctx context.Context, input *usecase.PasswordResetInput) (string, error) {
	if err := checkPasswordLength(input.NewPassword); err != nil {
		return "", err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return usecase.MessagePasswordResetSent, nil
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	token, err := srv.emailTokens.CreatePasswordResetToken(user.Email, hashedPassword)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.publish(ctx, service.MailKindResetPassword, user, token, input.BaseURL)

	return usecase.MessagePasswordResetSent, nil
}

// ConfirmPasswordReset installs the password digest carried by a reset token.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, token string) (string, error) {
	email, hashedPassword, err := srv.emailTokens.ExtractPassword(token)
	if err != nil {
		return "", err
	}

	var username string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrVerificationFailed
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := userRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		username = user.Username

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to reset password")
	}

	srv.invalidate(ctx, username)
	srv.log(ctx).Info("Password reset completed", slog.String("username", username))

	return usecase.MessagePasswordChanged, nil
}

func (srv *authService) sendConfirmation(ctx context.Context, user *entity.User, baseURL string) {
	token, err := srv.emailTokens.CreateEmailToken(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to create confirmation token", slog.String("email", user.Email), slog.Any("error", err))

		return
	}

	srv.publish(ctx, service.MailKindConfirmEmail, user, token, baseURL)
}

// publish hands a mail event to the publisher. Failures are logged only.
func (srv *authService) publish(ctx context.Context, kind service.MailKind, user *entity.User, token, baseURL string) {
	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MessageID: uuid.NewString(),
		Kind:      kind,
		Email:     user.Email,
		Username:  user.Username,
		Token:     token,
		BaseURL:   baseURL,
	}

	if err := srv.publisher.PublishMailEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish mail event",
			slog.String("kind", string(kind)),
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
	}
}

func (srv *authService) invalidate(ctx context.Context, username string) {
	if err := srv.currentUser.Invalidate(ctx, username); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached user", slog.String("username", username), slog.Any("error", err))
	}
}

// gravatarURL returns the identicon-backed Gravatar image of email.
func gravatarURL(email string) *string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	url := fmt.Sprintf("%s%x?d=identicon", gravatarBaseURL, sum)

	return &url
}

// checkPasswordLength rejects plaintexts bcrypt would refuse to hash.
func checkPasswordLength(password string) error {
	if len(password) > service.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password: maxbytes=%d", service.MaxPasswordBytes))
	}

	return nil
}
