package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/delivery/http/middleware"
	"contacts/internal/delivery/http/response"
	"contacts/internal/delivery/http/validator"
	"contacts/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestEcho returns an echo instance wired like the API server, with user
// (when non-nil) injected as the authenticated caller.
func newTestEcho(user *entity.User) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	if user != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetCurrentUser(c, user)

				return next(c)
			}
		})
	}

	return e
}

func newHandlerConfig() *config.Config {
	cfg := &config.Config{
		Contacts: &config.ContactsConfig{MaxLimit: 100, DefaultBirthdayDays: 7},
	}
	cfg.HTTP.BaseURL = "https://contacts.example.com/"

	return cfg
}

func newCaller(role entity.Role) *entity.User {
	return &entity.User{
		ID:        1,
		Username:  "agent007",
		Email:     "agent007@gmail.com",
		Role:      role,
		Confirmed: true,
		CreatedAt: time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

// decodeResponse unmarshals the envelope and re-decodes its data into out.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) response.Response {
	t.Helper()

	var envelope struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}

	return envelope.Response
}
