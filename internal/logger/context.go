package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or the global one.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}

	return global
}

// WithName adds a name segment to the context logger.
func WithName(ctx context.Context, name string) context.Context {
	return ToContext(ctx, FromContext(ctx).Named(name))
}

// WithKV attaches key-value pairs to every message of the context logger.
func WithKV(ctx context.Context, kvs ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(kvs...))
}
