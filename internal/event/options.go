package event

import "log/slog"

// EmitterOption configures an Emitter.
type EmitterOption func(*emitterConfig)

// emitterConfig contains configuration for the emitter.
type emitterConfig struct {
	// logger receives handler failures and stopped passes.
	logger *slog.Logger

	// source labels log records, e.g. the owning collection's kind.
	source string
}

// defaultEmitterConfig returns the default configuration.
func defaultEmitterConfig() emitterConfig {
	return emitterConfig{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used by the emitter.
func WithLogger(l *slog.Logger) EmitterOption {
	return func(c *emitterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSource sets the source attribute attached to every log record.
func WithSource(source string) EmitterOption {
	return func(c *emitterConfig) {
		c.source = source
	}
}
