package server

import (
	"context"
	"fmt"

	"maintenance-gateway/internal/adapters/storage"
	"maintenance-gateway/internal/config"
	"maintenance-gateway/internal/gateway"
	"maintenance-gateway/internal/invoke"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Dispatcher *gateway.Dispatcher

	// Internal dependencies
	store   storage.PageStore
	invoker invoke.FunctionInvoker
}

// NewContainer creates a new dependency injection container. Both entry
// points build exactly one container, so AWS clients are reused across warm
// invocations.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	store, err := storage.CreateFromConfig(ctx, &storage.Config{
		Type:     cfg.Storage.Type,
		Bucket:   cfg.Storage.Bucket,
		Region:   cfg.Storage.Region,
		BasePath: cfg.Storage.LocalPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page store: %w", err)
	}

	invoker, err := newInvoker(ctx, cfg)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create invoker: %w", err)
	}

	log := logrus.WithField("component", "dispatcher")

	return &Container{
		Config:     cfg,
		Dispatcher: gateway.NewDispatcher(*cfg, store, invoker, log),
		store:      store,
		invoker:    invoker,
	}, nil
}

// newInvoker builds the downstream invoker. When special routing is
// disabled the AWS Lambda client is never needed, so a mock stands in.
func newInvoker(ctx context.Context, cfg *config.Config) (invoke.FunctionInvoker, error) {
	if !cfg.SpecialRoutingEnabled() {
		return &invoke.MockInvoker{Err: invoke.ErrFunctionUnavailable}, nil
	}
	return invoke.NewLambdaInvoker(ctx, cfg.Storage.Region)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("failed to close page store: %w", err)
		}
	}
	return nil
}
