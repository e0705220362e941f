package service

import (
	"context"
)

// MailKind selects the template used for a mail event.
type MailKind string

const (
	MailKindConfirmEmail  MailKind = "confirm_email"
	MailKindResetPassword MailKind = "reset_password"
)

// MailEvent represents a message to be delivered by the mail worker
type MailEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	MessageID string   `json:"message_id"`
	Kind      MailKind `json:"kind"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Token     string   `json:"token"`
	BaseURL   string   `json:"base_url"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// MailEventHandler consumes mail events. The mail usecase implements it.
type MailEventHandler interface {
	Deliver(ctx context.Context, event *MailEvent) error
}
