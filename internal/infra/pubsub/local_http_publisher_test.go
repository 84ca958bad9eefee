package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"membergraph/internal/domain/constants"
	"membergraph/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishUserEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	balance := 12.5
	event := &service.UserEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       constants.UserEventCreated,
		UserID:     "user-1",
		Name:       "alice",
		Balance:    &balance,
		OccurredAt: "2026-01-01T00:00:00Z",
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishUserEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "user-1", received.Message.OrderingKey)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": constants.UserEventCreated,
		"user_id":    "user-1",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.UserEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishUserEvent(context.Background(), &service.UserEvent{
		EventID: "evt-2",
		Type:    constants.UserEventDeleted,
		UserID:  "user-2",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attributes := eventAttributes(&service.UserEvent{
		EventID: "evt-3",
		Type:    constants.UserEventUpdated,
		UserID:  "user-3",
	})

	assert.NotContains(t, attributes, "request_id")
	assert.Len(t, attributes, 3)
}
