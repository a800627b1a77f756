package targets

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Dispatcher routes targets to their encoders.
type Dispatcher struct {
	registry *Registry
	logger   zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegistry replaces the built-in encoders.
func WithRegistry(r *Registry) Option {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher backed by the built-in encoders.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewDefaultRegistry(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate renders one target. A kind with no encoder fails with
// *theme.UnknownTargetError before anything is rendered.
func (d *Dispatcher) Generate(cfg *theme.Config, target theme.Target) (Output, error) {
	if cfg == nil {
		return Output{}, fmt.Errorf("theme config is required")
	}

	encoder := d.registry.Get(target.Kind)
	if encoder == nil {
		return Output{}, &theme.UnknownTargetError{ID: string(target.Kind)}
	}

	files, err := encoder.Encode(cfg, target)
	if err != nil {
		return Output{}, fmt.Errorf("encode %s: %w", target.Kind, err)
	}

	for _, f := range files {
		d.logger.Debug().
			Str("target", string(target.Kind)).
			Str("file", f.Name).
			Int("bytes", len(f.Content)).
			Msg("rendered file")
	}

	return Output{Target: target, Dir: target.Path, Files: files}, nil
}

// GenerateAll renders every enabled target in document order, stopping at
// the first failure.
func (d *Dispatcher) GenerateAll(cfg *theme.Config) ([]Output, error) {
	if cfg == nil {
		return nil, fmt.Errorf("theme config is required")
	}

	outputs := make([]Output, 0, len(cfg.Targets))
	for _, target := range cfg.EnabledTargets() {
		out, err := d.Generate(cfg, target)
		if err != nil {
			return nil, fmt.Errorf("generate target %s: %w", target.Kind, err)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

var defaultDispatcher = NewDispatcher()

// Generate renders one target with the built-in encoders.
func Generate(cfg *theme.Config, target theme.Target) (Output, error) {
	return defaultDispatcher.Generate(cfg, target)
}
