package service

import (
	"time"

	"contacts/internal/domain/entity"
)

// TokenService issues and verifies signed tokens.
// Every verification failure is reported as errors.ErrInvalidToken.
type TokenService interface {
	// GenerateAccessToken signs an access token whose subject is the username.
	GenerateAccessToken(subject string) (string, error)

	// GenerateEmailToken signs an email-action token. IssuedAt and ExpiresAt are filled in by the service.
	GenerateEmailToken(claims entity.EmailClaims) (string, error)

	// ValidateAccessToken verifies signature, algorithm, expiry and token type.
	ValidateAccessToken(token string) (*entity.AccessClaims, error)

	// ValidateEmailToken verifies an email-action token.
	ValidateEmailToken(token string) (*entity.EmailClaims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
