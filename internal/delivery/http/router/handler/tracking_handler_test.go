package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet/config"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/tracking"
	mockRepo "fleet/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingTestServer(t *testing.T) (*httptest.Server, *tracking.Hub, *mockRepo.MockDeliveryRepository) {
	t.Helper()

	hub := tracking.NewHub(tracking.HubParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	h := NewTrackingHandler(TrackingHandlerParams{
		Hub:          hub,
		DeliveryRepo: deliveryRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	e.GET("/ws/delivery/:order_id", h.StreamDeliveryEvents)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv, hub, deliveryRepo
}

// A viewer may paste the order ID in any spelling uuid.Parse accepts; the
// subscription must still land on the topic publishers build from
// OrderID.String().
func TestTrackingHandler_UppercaseOrderIDReceivesPublishedEvents(t *testing.T) {
	srv, hub, deliveryRepo := newTrackingTestServer(t)
	orderID := uuid.New()

	deliveryRepo.EXPECT().FindDeliveryByOrder(mock.Anything, orderID).
		Return(&entity.Delivery{ID: uuid.New(), OrderID: orderID}, nil)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/ws/delivery/" + strings.ToUpper(orderID.String())
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// The subscription is registered after the handshake completes, so keep
	// publishing until the frame comes through.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		topic := constants.TrackingTopicPrefix + orderID.String()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = hub.Publish(context.Background(), topic, map[string]string{"status": "in_transit"})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(msg, &decoded))
	assert.Equal(t, "in_transit", decoded["status"])
}

func TestTrackingHandler_UnknownOrderReturnsNotFound(t *testing.T) {
	srv, _, deliveryRepo := newTrackingTestServer(t)
	orderID := uuid.New()

	deliveryRepo.EXPECT().FindDeliveryByOrder(mock.Anything, orderID).
		Return(nil, repository.ErrDeliveryNotFound)

	resp, err := http.Get(srv.URL + "/ws/delivery/" + orderID.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
