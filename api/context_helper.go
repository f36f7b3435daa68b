package api

import (
	"context"
	"time"
)

// QueryTimeout bounds every database call issued from a handler.
const QueryTimeout = 10 * time.Second

// WithQueryTimeout returns a child context capped at QueryTimeout.
func WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}

type contextKey string

const userIDKey contextKey = "authUserID"

// WithUserID stores the authenticated user's ID on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
