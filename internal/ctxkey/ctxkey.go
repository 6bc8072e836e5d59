// Package ctxkey holds the typed context keys shared between packages.
package ctxkey

import "context"

// ContextKey is the key type for values stored on a context.
type ContextKey string

const (
	// RequestID identifies one login or registration attempt.
	RequestID ContextKey = "request_id"

	// Operation names the pipeline the attempt belongs to.
	Operation ContextKey = "operation"
)

// WithValue stores value under key.
func WithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

// GetString returns the string stored under key, or "".
func GetString(ctx context.Context, key ContextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
