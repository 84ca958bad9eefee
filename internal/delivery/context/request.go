// Package context carries request-scoped values between the HTTP layer, the
// GraphQL pipeline and the store: the request id, the request logger and the
// name of the GraphQL operation being executed.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is the type of every key this package stores.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyOperation ContextKey = "graphql_operation"

	// HeaderXRequestID is read from clients and forwarded on outgoing pushes.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c, or a fresh UUID when none is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// SetOperationName records the GraphQL operation on c for the access log.
// Anonymous operations are not recorded.
func SetOperationName(c echo.Context, name string) {
	if name != "" {
		c.Set(string(KeyOperation), name)
	}
}

// GetOperationName returns the operation recorded on c, or "".
func GetOperationName(c echo.Context) string {
	name, _ := c.Get(string(KeyOperation)).(string)

	return name
}

// WithOperationName stores the operation name in ctx. When ctx already carries a
// request logger, the returned context's logger is tagged with the operation so
// resolver, loader and store logs can be told apart per operation.
func WithOperationName(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, KeyOperation, name)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("operation", name)))
	}

	return ctx
}

// GetOperationNameFromContext returns "" for anonymous operations.
func GetOperationNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(KeyOperation).(string)

	return name
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
