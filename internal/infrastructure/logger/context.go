package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	requestIDCtxKey
	userIDCtxKey
)

// WithContext returns a context carrying the given logger
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// FromContext returns the logger stored in the context, or a no-op
// logger when none is present
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// ContextWithRequestID stamps the request ID onto the context so that
// lower layers, the query tracer included, can correlate their output
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// GetRequestID returns the request ID stored in the context, if any
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}

// WithUserID records the authenticated user on the context and returns
// a logger enriched with the same field
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, userIDCtxKey, userID)
	enriched := logger.With(zap.String("user_id", userID))
	return WithContext(ctx, enriched), enriched
}

// GetUserID returns the user ID stored in the context, if any
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDCtxKey).(string)
	return id
}
