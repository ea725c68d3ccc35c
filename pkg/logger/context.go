package logger

import (
	"context"
	"log/slog"
)

type fieldsKey struct{}

// With returns a context whose loggers carry fields in addition to any
// already attached.
func With(ctx context.Context, fields ...any) context.Context {
	merged := append(append([]any(nil), fieldsFrom(ctx)...), fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// From returns the process logger with the context's fields.
func From(ctx context.Context) *slog.Logger {
	return Scoped(ctx, LoggerWrapper())
}

// Scoped returns base with the context's fields, so component loggers keep
// their own handler but still report request ids.
func Scoped(ctx context.Context, base *slog.Logger) *slog.Logger {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func fieldsFrom(ctx context.Context) []any {
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}
