package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher sends mail events to a Cloud Pub/Sub topic whose push
// subscription targets the mail worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID is missing.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	if err := ensureTopic(ctx, client, projectID, topicID); err != nil {
		_ = client.Close()

		return nil, err
	}

	logger.Info("Mail events go to Google Pub/Sub",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topicID,
		logger:    logger,
	}, nil
}

func ensureTopic(ctx context.Context, client *pubsub.Client, projectID, topicID string) error {
	_, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: fmt.Sprintf("projects/%s/topics/%s", projectID, topicID),
	})

	return errors.Wrapf(err, "topic %s is not available", topicID)
}

// PublishMailEvent blocks until Pub/Sub acknowledges the message.
func (p *googlePubSubPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode mail event")
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: messageAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event to %s", event.Kind, p.topic)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).InfoContext(ctx, "Mail event published",
		slog.String("message_id", event.MessageID),
		slog.String("server_id", serverID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client == nil {
		return nil
	}

	return errors.WithStack(p.client.Close())
}
