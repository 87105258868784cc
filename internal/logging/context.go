package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

var nop = zerolog.Nop()

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, &logger)
}

// FromContext returns the logger carried by ctx, or a no-op logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &nop
	}
	if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return &nop
}
