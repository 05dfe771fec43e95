package middleware

import (
	"context"
)

type ctxKey string

const ctxKeyIsHTMX ctxKey = "is_htmx"

// WithHTMX records whether the request came from htmx.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX reports whether the request asked for a fragment swap.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}
