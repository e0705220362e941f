// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	BaseURL  string // Prefix of the confirmation link sent by mail.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// PasswordResetInput defines the data required to start a password reset.
type PasswordResetInput struct {
	Email       string
	NewPassword string
	BaseURL     string
}

// Messages returned by the email flows.
const (
	MessageEmailConfirmed        = "Email confirmed"
	MessageEmailAlreadyConfirmed = "Your email is already confirmed"
	MessageCheckEmail            = "Check your email for confirmation"
	MessagePasswordResetSent     = "Check your email to confirm the password reset"
	MessagePasswordChanged       = "Password changed successfully"
)

// AuthUsecase defines the account operations exposed under /api/auth.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*entity.AccessToken, error)
	ConfirmEmail(ctx context.Context, token string) (string, error)
	RequestEmail(ctx context.Context, email, baseURL string) (string, error)
	RequestPasswordReset(ctx context.Context, input *PasswordResetInput) (string, error)
	ConfirmPasswordReset(ctx context.Context, token string) (string, error)
}

// EmailTokenUsecase issues and reads the single-purpose tokens mailed to users.
// Every read failure is reported as errors.ErrInvalidToken.
type EmailTokenUsecase interface {
	CreateEmailToken(email string) (string, error)
	CreatePasswordResetToken(email, hashedPassword string) (string, error)

	// ExtractEmail returns the subject of a confirmation token.
	ExtractEmail(token string) (string, error)

	// ExtractPassword returns the subject and the password digest of a reset token.
	ExtractPassword(token string) (email, hashedPassword string, err error)
}
