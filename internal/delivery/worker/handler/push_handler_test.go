package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/pubsub"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushBody(t *testing.T, event *service.MailEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.MessageID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, mail *mockUsecase.MockMailUsecase, audience string) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{Worker: &config.WorkerConfig{Audience: audience}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mail:   mail,
	})
}

func push(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func confirmEvent() *service.MailEvent {
	return &service.MailEvent{
		MessageID: "msg-1",
		Kind:      service.MailKindConfirmEmail,
		Email:     "agent007@gmail.com",
		Username:  "agent007",
		Token:     "tok",
		BaseURL:   "https://contacts.example.com",
		RequestID: "event-req",
	}
}

func TestHandlePush_Delivers(t *testing.T) {
	mail := mockUsecase.NewMockMailUsecase(t)
	mail.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(event *service.MailEvent) bool {
		return event.Email == "agent007@gmail.com" && event.Kind == service.MailKindConfirmEmail
	})).RunAndReturn(func(ctx context.Context, _ *service.MailEvent) error {
		assert.Equal(t, "attr-req", deliverycontext.GetRequestIDFromContext(ctx))

		return nil
	}).Once()

	rec := push(newPushHandler(t, mail, ""), newPushBody(t, confirmEvent(), map[string]string{"request_id": "attr-req"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := mockUsecase.NewMockMailUsecase(t)

			rec := push(newPushHandler(t, mail, ""), tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_RetryableFailureAsksForRedelivery(t *testing.T) {
	mail := mockUsecase.NewMockMailUsecase(t)
	mail.EXPECT().Deliver(mock.Anything, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrMailServerUnavailable, "dial smtp")).Once()

	rec := push(newPushHandler(t, mail, ""), newPushBody(t, confirmEvent(), nil), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcked(t *testing.T) {
	mail := mockUsecase.NewMockMailUsecase(t)
	mail.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domainerrors.ErrMailDeliveryFailed).Once()

	rec := push(newPushHandler(t, mail, ""), newPushBody(t, confirmEvent(), nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_VerifiesTokenWhenAudienceSet(t *testing.T) {
	original := validateIDToken
	t.Cleanup(func() { validateIDToken = original })

	validateIDToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "https://worker.example.com/push", audience)
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	mail := mockUsecase.NewMockMailUsecase(t)
	mail.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil).Once()
	h := newPushHandler(t, mail, "https://worker.example.com/push")
	body := newPushBody(t, confirmEvent(), nil)

	assert.Equal(t, http.StatusUnauthorized, push(h, body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, push(h, body, "Bearer forged").Code)
	assert.Equal(t, http.StatusOK, push(h, body, "Bearer good").Code)
}

func TestHandlePush_RejectsForeignIssuer(t *testing.T) {
	original := validateIDToken
	t.Cleanup(func() { validateIDToken = original })

	validateIDToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := push(newPushHandler(t, mockUsecase.NewMockMailUsecase(t), "aud"), newPushBody(t, confirmEvent(), nil), "Bearer x")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	event := confirmEvent()
	var msg pubsub.PubSubPushMessage

	assert.Equal(t, "event-req", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "attr-req"}
	assert.Equal(t, "attr-req", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "ctx-req")
	assert.Equal(t, "ctx-req", extractRequestID(ctx, &msg, event))

	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, event))
}
