// Package pubsub publishes user change events to Google Pub/Sub or, during
// development, to a local HTTP endpoint that mimics Pub/Sub push delivery.
package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/domain/service"
)

// eventAttributes are attached to every message so subscribers can filter
// without decoding the payload.
func eventAttributes(event *service.UserEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
