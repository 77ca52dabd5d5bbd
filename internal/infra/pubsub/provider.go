// Package pubsub provides event publisher implementations for
// broadcasting customer lifecycle events.
package pubsub

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"crm/config"
	"crm/internal/domain/service"
)

const (
	pubSubProviderLocal  = "local"
	pubSubProviderGoogle = "google"
)

// noopPublisher discards events. Used when no pub/sub provider is configured.
type noopPublisher struct{}

func (noopPublisher) PublishCustomerCreated(ctx context.Context, event *service.CustomerCreatedEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }

// PublisherParams contains dependencies for creating an event publisher.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an event publisher based on configuration.
// Returns a no-op publisher when pub/sub is not configured.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("pubsub not configured, events will be discarded")
		return noopPublisher{}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case pubSubProviderLocal:
		publisher = newLocalHTTPPublisher(cfg, params.Logger)
	case pubSubProviderGoogle:
		publisher, err = newGooglePublisher(params.Ctx, cfg, params.Logger)
		if err != nil {
			return nil, err
		}
	default:
		params.Logger.Warn("unknown pubsub provider, events will be discarded",
			slog.String("provider", cfg.Provider))
		return noopPublisher{}, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
