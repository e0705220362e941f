package auth

import (
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTOptions holds the immutable settings of a token service.
type JWTOptions struct {
	Secret    string
	Algorithm string // HS256, HS384 or HS512.
	AccessTTL time.Duration
	EmailTTL  time.Duration
	Leeway    time.Duration
	Now       func() time.Time // Defaults to time.Now.
}

// tokenClaims is the wire payload shared by both token variants. Type tells them apart.
type tokenClaims struct {
	Type     entity.TokenType    `json:"type"`
	Purpose  entity.EmailPurpose `json:"purpose,omitempty"`
	Password string              `json:"password,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
	emailTTL  time.Duration
	leeway    time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor used by the application wiring.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return NewJWTServiceWithOptions(JWTOptions{
		Secret:    cfg.Auth.SecretKey,
		Algorithm: cfg.Auth.Algorithm,
		AccessTTL: cfg.Auth.AccessTokenTTL,
		EmailTTL:  cfg.Auth.EmailTokenTTL,
		Leeway:    cfg.Auth.Leeway,
	})
}

// NewJWTServiceWithOptions validates opts and builds the service.
func NewJWTServiceWithOptions(opts JWTOptions) (service.TokenService, error) {
	if opts.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(opts.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", opts.Algorithm)
	}

	if opts.AccessTTL <= 0 || opts.EmailTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	if opts.AccessTTL%time.Second != 0 || opts.EmailTTL%time.Second != 0 {
		return nil, errors.New("token lifetimes must be whole seconds")
	}

	if opts.Leeway < 0 {
		return nil, errors.New("leeway must not be negative")
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret:    []byte(opts.Secret),
		method:    method,
		accessTTL: opts.AccessTTL,
		emailTTL:  opts.EmailTTL,
		leeway:    opts.Leeway,
		now:       now,
	}, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// GenerateAccessToken creates an access token whose subject is the username.
func (s *jwtService) GenerateAccessToken(subject string) (string, error) {
	return s.sign(subject, s.accessTTL, tokenClaims{Type: entity.TokenTypeAccess})
}

// GenerateEmailToken creates a confirmation or password reset token whose subject is the email.
func (s *jwtService) GenerateEmailToken(claims entity.EmailClaims) (string, error) {
	switch claims.Purpose {
	case entity.EmailPurposeConfirm:
	case entity.EmailPurposeResetPassword:
		if claims.Password == "" {
			return "", errors.New("reset token requires a password digest")
		}
	default:
		return "", errors.Errorf("unknown email token purpose %q", claims.Purpose)
	}

	return s.sign(claims.Subject, s.emailTTL, tokenClaims{
		Type:     entity.TokenTypeEmail,
		Purpose:  claims.Purpose,
		Password: claims.Password,
	})
}

// ValidateAccessToken decodes an access token.
func (s *jwtService) ValidateAccessToken(token string) (*entity.AccessClaims, error) {
	claims, err := s.parse(token, entity.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &entity.AccessClaims{
		Subject:   claims.Subject,
		IssuedAt:  numericTime(claims.IssuedAt),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ValidateEmailToken decodes an email-action token.
func (s *jwtService) ValidateEmailToken(token string) (*entity.EmailClaims, error) {
	claims, err := s.parse(token, entity.TokenTypeEmail)
	if err != nil {
		return nil, err
	}

	return &entity.EmailClaims{
		Subject:   claims.Subject,
		Purpose:   claims.Purpose,
		Password:  claims.Password,
		IssuedAt:  numericTime(claims.IssuedAt),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// sign issues a token valid for ttl. JWT dates have whole-second precision, so
// the issue instant is truncated first and exp is exactly iat + ttl.
func (s *jwtService) sign(subject string, ttl time.Duration, claims tokenClaims) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	now := s.now().Truncate(time.Second)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// parse verifies the token and its type. Every failure collapses into ErrInvalidToken.
func (s *jwtService) parse(token string, want entity.TokenType) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	// Expired from the exact expiry instant on.
	if !s.now().Before(claims.ExpiresAt.Add(s.leeway)) {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token expired")
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("missing subject")
	}

	if claims.Type != want {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	return claims, nil
}

func numericTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}

	return d.Time
}
