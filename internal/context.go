package internal

import (
	"context"
	"time"
)

// DefaultCheckTimeout bounds dependency checks and shutdown steps that have
// no configured timeout of their own.
const DefaultCheckTimeout = 2 * time.Second

// WithTimeout bounds ctx by d, or by DefaultCheckTimeout when d is zero or negative.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultCheckTimeout
	}
	return context.WithTimeout(ctx, d)
}
