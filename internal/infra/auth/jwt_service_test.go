package auth

import (
	"strings"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock, leeway time.Duration) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithOptions(JWTOptions{
		Secret:    testSecret,
		Algorithm: "HS256",
		AccessTTL: 15 * time.Minute,
		EmailTTL:  7 * 24 * time.Hour,
		Leeway:    leeway,
		Now:       clock.Now,
	})
	require.NoError(t, err)

	return svc
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock, 0)

	token, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(clock.now))
	assert.True(t, claims.ExpiresAt.Equal(clock.now.Add(15*time.Minute)))
	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issued := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: issued}
	svc := newTestJWTService(t, clock, 0)

	token, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)

	clock.now = issued.Add(15*time.Minute - time.Second)
	_, err = svc.ValidateAccessToken(token)
	require.NoError(t, err)

	clock.now = issued.Add(15 * time.Minute)
	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	clock.now = issued.Add(time.Hour)
	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_SubSecondIssueInstant(t *testing.T) {
	issued := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: issued.Add(700 * time.Millisecond)}
	svc := newTestJWTService(t, clock, 0)

	token, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.Equal(t, 15*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt))

	clock.now = issued.Add(15*time.Minute - time.Nanosecond)
	_, err = svc.ValidateAccessToken(token)
	require.NoError(t, err)

	clock.now = issued.Add(15 * time.Minute)
	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_Leeway(t *testing.T) {
	issued := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: issued}
	svc := newTestJWTService(t, clock, 30*time.Second)

	token, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)

	clock.now = issued.Add(15*time.Minute + 10*time.Second)
	_, err = svc.ValidateAccessToken(token)
	require.NoError(t, err)

	clock.now = issued.Add(15*time.Minute + 30*time.Second)
	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsForeignSignatures(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock, 0)

	other, err := NewJWTServiceWithOptions(JWTOptions{
		Secret:    "another_secret",
		Algorithm: "HS256",
		AccessTTL: time.Minute,
		EmailTTL:  time.Minute,
		Now:       clock.Now,
	})
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken("alice")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(foreign)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	// Payload of one token with the signature of another.
	aliceToken, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)
	bobToken, err := svc.GenerateAccessToken("bob")
	require.NoError(t, err)
	aliceParts := strings.Split(aliceToken, ".")
	bobParts := strings.Split(bobToken, ".")
	spliced := strings.Join([]string{aliceParts[0], bobParts[1], aliceParts[2]}, ".")
	_, err = svc.ValidateAccessToken(spliced)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: now}
	svc := newTestJWTService(t, clock, 0)

	claims := jwt.MapClaims{
		"sub":  "alice",
		"type": "access",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Minute).Unix(),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(hs512)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(none)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsMalformedPayloads(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: now}
	svc := newTestJWTService(t, clock, 0)

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		return token
	}

	tests := map[string]string{
		"garbage":         "clearly-not-a-jwt-token-format",
		"empty":           "",
		"missing exp":     sign(jwt.MapClaims{"sub": "alice", "type": "access"}),
		"missing subject": sign(jwt.MapClaims{"type": "access", "exp": now.Add(time.Minute).Unix()}),
		"missing type":    sign(jwt.MapClaims{"sub": "alice", "exp": now.Add(time.Minute).Unix()}),
		"bad exp type":    sign(jwt.MapClaims{"sub": "alice", "type": "access", "exp": "tomorrow"}),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestJWTService(t, clock, 0)

	access, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)
	email, err := svc.GenerateEmailToken(entity.EmailClaims{
		Subject: "alice@example.com",
		Purpose: entity.EmailPurposeConfirm,
	})
	require.NoError(t, err)

	_, err = svc.ValidateEmailToken(access)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = svc.ValidateAccessToken(email)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmailTokens(t *testing.T) {
	issued := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{now: issued}
	svc := newTestJWTService(t, clock, 0)

	token, err := svc.GenerateEmailToken(entity.EmailClaims{
		Subject:  "alice@example.com",
		Purpose:  entity.EmailPurposeResetPassword,
		Password: "$2a$10$digest",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateEmailToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, entity.EmailPurposeResetPassword, claims.Purpose)
	assert.Equal(t, "$2a$10$digest", claims.Password)
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(7*24*time.Hour)))

	clock.now = issued.Add(7 * 24 * time.Hour)
	_, err = svc.ValidateEmailToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = svc.GenerateEmailToken(entity.EmailClaims{Subject: "a@b.c", Purpose: entity.EmailPurposeResetPassword})
	assert.Error(t, err)

	_, err = svc.GenerateEmailToken(entity.EmailClaims{Subject: "a@b.c", Purpose: "unsubscribe"})
	assert.Error(t, err)
}

func TestNewJWTService_Validation(t *testing.T) {
	base := JWTOptions{Secret: testSecret, Algorithm: "HS256", AccessTTL: time.Minute, EmailTTL: time.Minute}

	tests := map[string]func(o *JWTOptions){
		"empty secret":   func(o *JWTOptions) { o.Secret = "" },
		"rsa algorithm":  func(o *JWTOptions) { o.Algorithm = "RS256" },
		"unknown alg":    func(o *JWTOptions) { o.Algorithm = "HS1" },
		"zero ttl":       func(o *JWTOptions) { o.AccessTTL = 0 },
		"fractional ttl": func(o *JWTOptions) { o.EmailTTL = 1500 * time.Millisecond },
		"negative leway": func(o *JWTOptions) { o.Leeway = -time.Second },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			opts := base
			mutate(&opts)
			svc, err := NewJWTServiceWithOptions(opts)
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		opts := base
		opts.Algorithm = alg
		_, err := NewJWTServiceWithOptions(opts)
		assert.NoError(t, err, alg)
	}
}

func TestNewJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{
		SecretKey:      testSecret,
		Algorithm:      "HS384",
		AccessTokenTTL: 15 * time.Minute,
		EmailTokenTTL:  time.Hour,
	}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken("alice")
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}
