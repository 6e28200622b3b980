// Package reqid tags contexts with a per-request ID for log correlation
package reqid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const requestIDKey contextKey = iota

// New generates a fresh request ID
func New() string {
	return uuid.New().String()
}

// With returns a context carrying the request ID
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// From extracts the request ID, or "" when the context has none
func From(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
