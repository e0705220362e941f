package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"contacts/config"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	f.sent = append(f.sent, messages...)

	return f.err
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newTestMailer(s sender) *SMTPMailer {
	return newSMTPMailer(s, &config.MailConfig{
		From:     "no-reply@contacts.local",
		FromName: "Contacts",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSMTPMailer_Send(t *testing.T) {
	s := &fakeSender{}
	mailer := newTestMailer(s)

	err := mailer.Send(context.Background(), &service.Mail{
		To:       "alice@example.com",
		Subject:  "Confirm your email",
		HTMLBody: "<p>hello</p>",
		TextBody: "hello",
	})
	require.NoError(t, err)
	require.Len(t, s.sent, 1)

	msg := s.sent[0]
	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com"}, recipients)
	assert.Equal(t, []string{"Confirm your email"}, msg.GetGenHeader(gomail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "no-reply@contacts.local")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPMailer_SendErrors(t *testing.T) {
	tests := []struct {
		name   string
		mail   *service.Mail
		sendEr error
		want   *domainerrors.BaseError
	}{
		{
			name: "invalid recipient",
			mail: &service.Mail{To: "not an address", Subject: "x", TextBody: "x"},
			want: domainerrors.ErrMailDeliveryFailed,
		},
		{
			name:   "permanent failure",
			mail:   &service.Mail{To: "bob@example.com", Subject: "x", TextBody: "x"},
			sendEr: errors.New("550 mailbox unavailable"),
			want:   domainerrors.ErrMailDeliveryFailed,
		},
		{
			name:   "connection refused",
			mail:   &service.Mail{To: "bob@example.com", Subject: "x", TextBody: "x"},
			sendEr: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want:   domainerrors.ErrMailServerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := newTestMailer(&fakeSender{err: tt.sendEr})

			err := mailer.Send(context.Background(), tt.mail)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsTemporary(t *testing.T) {
	assert.True(t, IsTemporary(timeoutError{}))
	assert.True(t, IsTemporary(errors.Wrap(context.DeadlineExceeded, "send")))
	assert.True(t, IsTemporary(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.False(t, IsTemporary(errors.New("auth failed")))
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{}}, slog.Default())
	require.Error(t, err)

	mailer, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{Host: "localhost", Port: 1025}}, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}
