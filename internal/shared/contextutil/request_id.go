package contextutil

import "context"

// Unexported type keeps the context key collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request id put in place by the middleware.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects an id into the context (also handy in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
