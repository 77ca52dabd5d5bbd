package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"crm/config"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

// PubSubPushMessage mirrors the envelope Google Pub/Sub delivers on push
// subscriptions, so local consumers see the same wire format.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher simulates Pub/Sub push delivery by posting events
// directly to a configured endpoint. Intended for local development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func newLocalHTTPPublisher(cfg *config.PubSubConfig, logger *slog.Logger) *localHTTPPublisher {
	endpoint := cfg.LocalEndpoint
	if endpoint == "" {
		endpoint = "http://localhost:8081/push"
	}

	logger.Info("local pubsub publisher ready", slog.String("endpoint", endpoint))

	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishCustomerCreated(ctx context.Context, event *service.CustomerCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "pubsub: marshal event")
	}

	var push PubSubPushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{
		"customer_id": event.CustomerID.String(),
		"username":    event.Username,
		"request_id":  event.RequestID,
	}
	push.Message.MessageID = event.CustomerID.String()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	push.Subscription = "projects/local/subscriptions/customer-created-sub"

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "pubsub: marshal push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "pubsub: build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", event.RequestID)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "pubsub: push event")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("pubsub: push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "pushed customer created event",
		slog.String("endpoint", p.endpoint),
		slog.String("customer_id", event.CustomerID.String()))

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
