// Package context carries the request id and the request-scoped logger from the
// HTTP surface through the engine down to the backend gateway.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is sent on responses and forwarded on every backend call.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength bounds a caller-supplied request id.
	MaxRequestIDLength = 128
)

// NormalizeRequestID keeps a caller-supplied id when it is non-empty and within
// MaxRequestIDLength, and generates a new one otherwise.
func NormalizeRequestID(id string) string {
	if id == "" || len(id) > MaxRequestIDLength {
		return uuid.NewString()
	}

	return id
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// OutboundRequestID returns the id to send to the backend: the inbound request's
// id when ctx carries one, a fresh one for calls the engine makes on its own.
func OutboundRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestScope returns ctx carrying requestID and a logger tagged with it.
func WithRequestScope(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyRequestID, requestID)

	return context.WithValue(ctx, KeyLogger, base.With(slog.String("request_id", requestID)))
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
