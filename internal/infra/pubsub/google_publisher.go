package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"

	"crm/config"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

// googlePublisher publishes customer events to Google Cloud Pub/Sub.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*googlePublisher, error) {
	if cfg.ProjectID == "" || cfg.TopicID == "" {
		return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub: create client")
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "pubsub: topic %s not found", topicName)
	}

	logger.Info("google pubsub publisher ready",
		slog.String("project", cfg.ProjectID),
		slog.String("topic", cfg.TopicID))

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishCustomerCreated(ctx context.Context, event *service.CustomerCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "pubsub: marshal event")
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"customer_id": event.CustomerID.String(),
			"username":    event.Username,
			"request_id":  event.RequestID,
		},
	})

	messageID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "pubsub: publish customer created")
	}

	p.logger.DebugContext(ctx, "published customer created event",
		slog.String("message_id", messageID),
		slog.String("customer_id", event.CustomerID.String()))

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return p.client.Close()
}
