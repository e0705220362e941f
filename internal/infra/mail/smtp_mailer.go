// Package mail sends rendered messages over SMTP.
package mail

import (
	"context"
	"log/slog"
	"net"
	"time"

	"contacts/config"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultTimeout = 10 * time.Second

// sender is the part of *gomail.Client the mailer needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPMailer implements service.Mailer with go-mail.
type SMTPMailer struct {
	client   sender
	from     string
	fromName string
	logger   *slog.Logger
}

// NewSMTPMailer builds an SMTP client from configuration.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	client, err := newClient(cfg.Mail)
	if err != nil {
		return nil, err
	}

	return newSMTPMailer(client, cfg.Mail, logger), nil
}

func newSMTPMailer(client sender, cfg *config.MailConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

func newClient(cfg *config.MailConfig) (*gomail.Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("mail host must be provided")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []gomail.Option{gomail.WithTimeout(timeout)}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.TLS {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create SMTP client")
	}

	return client, nil
}

// Send renders the envelope and delivers it. Transient failures are reported
// as ErrMailServerUnavailable so the caller can ask for redelivery.
func (m *SMTPMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg, err := m.buildMessage(mail)
	if err != nil {
		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		if IsTemporary(err) {
			m.logger.Warn("Transient SMTP failure",
				slog.String("to", mail.To),
				slog.Any("error", err),
			)

			return domainerrors.ErrMailServerUnavailable.WrapMessage(err.Error())
		}

		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	m.logger.Debug("Mail sent", slog.String("to", mail.To), slog.String("subject", mail.Subject))

	return nil
}

func (m *SMTPMailer) buildMessage(mail *service.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if m.fromName != "" {
		if err := msg.FromFormat(m.fromName, m.from); err != nil {
			return nil, errors.Wrap(err, "invalid sender")
		}
	} else if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender")
	}

	if err := msg.To(mail.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}

	msg.Subject(mail.Subject)

	switch {
	case mail.TextBody != "" && mail.HTMLBody != "":
		msg.SetBodyString(gomail.TypeTextPlain, mail.TextBody)
		msg.AddAlternativeString(gomail.TypeTextHTML, mail.HTMLBody)
	case mail.HTMLBody != "":
		msg.SetBodyString(gomail.TypeTextHTML, mail.HTMLBody)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, mail.TextBody)
	}

	return msg, nil
}

// IsTemporary reports whether an SMTP failure may succeed on retry.
func IsTemporary(err error) bool {
	if sendErr, ok := errors.AsType[*gomail.SendError](err); ok {
		return sendErr.IsTemp()
	}

	if _, ok := errors.AsType[*net.OpError](err); ok {
		return true
	}

	if netErr, ok := errors.AsType[net.Error](err); ok {
		return netErr.Timeout()
	}

	return errors.Is(err, context.DeadlineExceeded)
}
