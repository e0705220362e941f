package middleware

import (
	"strings"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerScheme = "bearer"

	failureMissingToken = "missing_token"
)

// AuthMiddleware resolves bearer tokens to users and guards routes by role.
type AuthMiddleware struct {
	currentUser usecase.CurrentUserUsecase
	metrics     service.AuthMetrics
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	CurrentUser usecase.CurrentUserUsecase
	Metrics     service.AuthMetrics `optional:"true"`
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	authMetrics := params.Metrics
	if authMetrics == nil {
		authMetrics = metrics.Noop{}
	}

	return &AuthMiddleware{
		currentUser: params.CurrentUser,
		metrics:     authMetrics,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved user on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			m.metrics.RecordAuthFailure(failureMissingToken)

			return domainerrors.ErrInvalidToken
		}

		user, err := m.currentUser.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// RequireRole only lets users holding role through. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := deliverycontext.GetCurrentUser(c)
			if _, err := usecase.Authorize(user, role); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
