package entity

import "time"

// TokenType tags the payload variant carried by a signed token.
type TokenType string

const (
	TokenTypeAccess TokenType = "access"
	TokenTypeEmail  TokenType = "email"
)

// EmailPurpose tells which flow an email token was issued for.
type EmailPurpose string

const (
	EmailPurposeConfirm       EmailPurpose = "confirm_email"
	EmailPurposeResetPassword EmailPurpose = "reset_password"
)

// AccessClaims is the decoded payload of an access token.
type AccessClaims struct {
	Subject   string // Username.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// EmailClaims is the decoded payload of an email-action token.
type EmailClaims struct {
	Subject   string // Email address.
	Purpose   EmailPurpose
	Password  string // Bcrypt digest of the new password, only for reset tokens.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AccessToken is returned by a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
