package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/repository"
	"fleet/internal/errors"
	"fleet/internal/infra/tracking"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const trackingWriteTimeout = 10 * time.Second

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	Hub          *tracking.Hub
	DeliveryRepo repository.DeliveryRepository
	Logger       *slog.Logger
}

// TrackingHandler streams live tracking events over WebSocket. Anyone holding
// the order ID (e.g. from the tracking QR code) may watch; no authentication
// is required on this endpoint.
type TrackingHandler struct {
	hub          *tracking.Hub
	deliveryRepo repository.DeliveryRepository
	logger       *slog.Logger
	upgrader     websocket.Upgrader
}

// NewTrackingHandler is the constructor for TrackingHandler.
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		hub:          params.Hub,
		deliveryRepo: params.DeliveryRepo,
		logger:       params.Logger,
		upgrader: websocket.Upgrader{
			// The tracking page may be served from any origin (QR code scans).
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// StreamDeliveryEvents upgrades the connection and forwards every event
// published on the order's tracking topic until the client disconnects.
// Events published before the client connected are not replayed.
func (h *TrackingHandler) StreamDeliveryEvents(c echo.Context) error {
	orderIDStr := c.Param("order_id")
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	// Only orders with an open delivery expose a tracking channel.
	if _, err := h.deliveryRepo.FindDeliveryByOrder(c.Request().Context(), orderID); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return response.NotFound(c, "DELIVERY_NOT_FOUND", "No delivery found for this order")
		}

		return errors.WithStack(err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		return nil
	}
	defer conn.Close()

	// Canonical form: publishers build the topic from OrderID.String(), while
	// uuid.Parse also accepts uppercase, braced and urn spellings in the URL.
	topic := constants.TrackingTopicPrefix + orderID.String()
	sub := h.hub.Subscribe(topic)
	defer sub.Close()

	h.logger.Debug("Tracking client connected", slog.String("topic", topic))

	// Reader loop exists only to observe the close handshake.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ctx := c.Request().Context()
	for {
		select {
		case msg, ok := <-sub.C():
			if !ok {
				return nil
			}
			conn.SetWriteDeadline(time.Now().Add(trackingWriteTimeout))
			if writeErr := conn.WriteMessage(websocket.TextMessage, msg); writeErr != nil {
				h.logger.Debug("Tracking client write failed",
					slog.String("topic", topic),
					slog.Any("error", writeErr),
				)

				return nil
			}
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
