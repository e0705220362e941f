// Package handler decodes Pub/Sub push deliveries for the mail worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/pubsub"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var validateIDToken = idtoken.Validate

// PushHandler hands mail events pushed by Pub/Sub to the mail usecase.
type PushHandler struct {
	audience string
	logger   *slog.Logger
	mail     usecase.MailUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mail   usecase.MailUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. OIDC push tokens are
// verified only when worker.audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.Audience
	}

	return &PushHandler{
		audience: audience,
		logger:   params.Logger,
		mail:     params.Mail,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery,
// in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse mail event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing mail event",
		slog.String("message_id", event.MessageID),
		slog.String("kind", string(event.Kind)),
	)

	if err := h.mail.Deliver(ctx, &event); err != nil {
		retryable := errors.Is(err, domainerrors.ErrMailServerUnavailable)
		reqLogger.Error("[Worker] Failed to deliver mail",
			slog.String("message_id", event.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Mail delivered", slog.String("message_id", event.MessageID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.MailEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken checks the Google-signed OIDC token Pub/Sub attaches to push requests.
func (h *PushHandler) verifyPushToken(ctx context.Context, authHeader string) error {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}

	payload, err := validateIDToken(ctx, strings.TrimPrefix(authHeader, bearerPrefix), h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
