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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.OrderPlacedEvent{
		RequestID: "req-1",
		OrderID:   "7b0c1c9e-8f1b-4d8e-9a52-1f3c2b7d6e10",
		Email:     "ada@example.com",
		ItemCount: 2,
		Total:     "36717.84",
		PlacedAt:  time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.OrderID, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeOrderPlaced, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, "36717.84", decoded.Total)
}

func TestLocalHTTPPublisher_PublishOrderPlaced_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{OrderID: "o-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNoopPublisher_PublishOrderPlaced(t *testing.T) {
	publisher := &noopPublisher{logger: testLogger()}

	assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{OrderID: "o-1"}))
	assert.NoError(t, publisher.Close())
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.OrderPlacedEvent{OrderID: "o-1"})
	assert.Equal(t, map[string]string{
		"event_type": constants.EventTypeOrderPlaced,
		"order_id":   "o-1",
	}, attrs)

	attrs = eventAttributes(&service.OrderPlacedEvent{OrderID: "o-1", UserID: "u-1", RequestID: "r-1"})
	assert.Equal(t, "u-1", attrs["user_id"])
	assert.Equal(t, "r-1", attrs["request_id"])
}
