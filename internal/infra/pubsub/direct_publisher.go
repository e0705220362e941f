package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contacts/internal/domain/service"
)

const directDeliveryTimeout = 30 * time.Second

// directPublisher hands events to an in-process handler on a background goroutine,
// so a request never waits on mail delivery. Close waits for in-flight deliveries.
type directPublisher struct {
	handler service.MailEventHandler
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewDirectPublisher creates a publisher that delivers mail without a broker
func NewDirectPublisher(handler service.MailEventHandler, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{handler: handler, logger: logger}
}

func (p *directPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	deliveryCtx := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(deliveryCtx, directDeliveryTimeout)
		defer cancel()

		if err := p.handler.Deliver(ctx, event); err != nil {
			p.logger.ErrorContext(ctx, "[DirectPubSub] Mail delivery failed",
				slog.String("message_id", event.MessageID),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

func (p *directPublisher) Close() error {
	p.wg.Wait()

	return nil
}
