// Package di wires configuration, logging, and the getter service together
// for the CLI orchestration layer.
package di

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/grab/internal/executor"
	"github.com/goliatone/grab/internal/getter"
	"github.com/goliatone/grab/pkg/config"
)

// Container exposes resolved dependencies for the CLI orchestration layer.
type Container interface {
	Getter() *getter.Service
	Cloner() executor.Cloner
	Config() *config.Config
	Logger() *slog.Logger
}

// Option customises container construction using the functional options
// pattern. Options allow overriding default dependencies for testing.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided
// options.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// WithConfig supplies the merged runtime configuration. Required.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		b.logger = logger
		return nil
	}
}

// WithCloner overrides the default git-backed cloner, primarily for tests.
func WithCloner(cloner executor.Cloner) Option {
	return func(b *builder) error {
		b.cloner = cloner
		return nil
	}
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	cfg    *config.Config
	logger *slog.Logger
	cloner executor.Cloner
}

func (b *builder) build() (Container, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("di: configuration is required")
	}

	if b.logger == nil {
		b.logger = provideLogger(b.cfg)
	}
	if b.cloner == nil {
		b.cloner = provideCloner(b.cfg, b.logger)
	}

	return &container{
		cfg:    b.cfg,
		logger: b.logger,
		cloner: b.cloner,
		getter: getter.New(b.cfg, b.cloner, b.logger),
	}, nil
}

type container struct {
	cfg    *config.Config
	logger *slog.Logger
	cloner executor.Cloner
	getter *getter.Service
}

func (c *container) Getter() *getter.Service { return c.getter }
func (c *container) Cloner() executor.Cloner { return c.cloner }
func (c *container) Config() *config.Config  { return c.cfg }
func (c *container) Logger() *slog.Logger    { return c.logger }
