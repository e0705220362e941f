package service

import "context"

// Mail is a rendered message ready to be sent.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer sends rendered mail.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
