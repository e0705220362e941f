package impl

import (
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
)

// emailTokenService implements the EmailTokenUsecase interface on top of the token service.
type emailTokenService struct {
	tokenService service.TokenService
}

// NewEmailTokenService is the constructor for emailTokenService.
func NewEmailTokenService(tokenService service.TokenService) usecase.EmailTokenUsecase {
	return &emailTokenService{tokenService: tokenService}
}

func (srv *emailTokenService) CreateEmailToken(email string) (string, error) {
	return srv.tokenService.GenerateEmailToken(entity.EmailClaims{
		Subject: email,
		Purpose: entity.EmailPurposeConfirm,
	})
}

func (srv *emailTokenService) CreatePasswordResetToken(email, hashedPassword string) (string, error) {
	return srv.tokenService.GenerateEmailToken(entity.EmailClaims{
		Subject:  email,
		Purpose:  entity.EmailPurposeResetPassword,
		Password: hashedPassword,
	})
}

func (srv *emailTokenService) ExtractEmail(token string) (string, error) {
	claims, err := srv.extract(token, entity.EmailPurposeConfirm)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func (srv *emailTokenService) ExtractPassword(token string) (string, string, error) {
	claims, err := srv.extract(token, entity.EmailPurposeResetPassword)
	if err != nil {
		return "", "", err
	}

	if claims.Password == "" {
		return "", "", domainerrors.ErrInvalidToken.WrapMessage("reset token carries no password")
	}

	return claims.Subject, claims.Password, nil
}

func (srv *emailTokenService) extract(token string, purpose entity.EmailPurpose) (*entity.EmailClaims, error) {
	claims, err := srv.tokenService.ValidateEmailToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid email token")
	}

	if claims.Purpose != purpose {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("email token issued for " + string(claims.Purpose))
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("email token has no subject")
	}

	return claims, nil
}
