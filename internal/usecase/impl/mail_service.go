package impl

import (
	"bytes"
	"context"
	"embed"
	htmltemplate "html/template"
	"log/slog"
	"net/url"
	"strings"
	texttemplate "text/template"

	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
)

//go:embed templates/*
var mailTemplates embed.FS

// mailTemplate describes how one mail kind is rendered.
type mailTemplate struct {
	subject  string
	linkPath string
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

type mailData struct {
	Username string
	Link     string
}

// mailService implements the MailUsecase interface.
type mailService struct {
	mailer    service.Mailer
	templates map[service.MailKind]*mailTemplate
	logger    *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(mailer service.Mailer, logger *slog.Logger) (usecase.MailUsecase, error) {
	templates := make(map[service.MailKind]*mailTemplate, 2)

	for kind, def := range map[service.MailKind]struct {
		subject  string
		linkPath string
		file     string
	}{
		service.MailKindConfirmEmail:  {"Confirm your email", "/api/auth/confirmed_email/", "confirm_email"},
		service.MailKindResetPassword: {"Confirm your password reset", "/api/auth/confirm_reset_password/", "reset_password"},
	} {
		html, err := htmltemplate.ParseFS(mailTemplates, "templates/"+def.file+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s html template", def.file)
		}

		text, err := texttemplate.ParseFS(mailTemplates, "templates/"+def.file+".txt")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s text template", def.file)
		}

		templates[kind] = &mailTemplate{
			subject:  def.subject,
			linkPath: def.linkPath,
			html:     html,
			text:     text,
		}
	}

	return &mailService{
		mailer:    mailer,
		templates: templates,
		logger:    logger,
	}, nil
}

func (srv *mailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver renders the event's template and sends it.
func (srv *mailService) Deliver(ctx context.Context, event *service.MailEvent) error {
	tmpl, ok := srv.templates[event.Kind]
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown mail kind " + string(event.Kind))
	}

	if event.Email == "" || event.Token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("mail event lacks recipient or token")
	}

	data := mailData{
		Username: event.Username,
		Link:     strings.TrimRight(event.BaseURL, "/") + tmpl.linkPath + url.PathEscape(event.Token),
	}

	var html, text bytes.Buffer
	if err := tmpl.html.Execute(&html, data); err != nil {
		return errors.Wrap(err, "render html body")
	}
	if err := tmpl.text.Execute(&text, data); err != nil {
		return errors.Wrap(err, "render text body")
	}

	err := srv.mailer.Send(ctx, &service.Mail{
		To:       event.Email,
		Subject:  tmpl.subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Mail delivery failed",
			slog.String("message_id", event.MessageID),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send mail")
	}

	srv.log(ctx).Info("Mail delivered",
		slog.String("message_id", event.MessageID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}
