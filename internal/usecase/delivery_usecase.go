// Package usecase defines the application's use case interfaces and their
// input and output types.
package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryInput carries the data needed to open a delivery for an order.
// Pickup and dropoff are optional geocoded "lat, lng" pairs; when absent the
// delivery is created unrouted and cost estimation is deferred.
type CreateDeliveryInput struct {
	OrderID         uuid.UUID `json:"order_id"`
	DeliveryAddress string    `json:"delivery_address"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	RequestedBy     uuid.UUID `json:"requested_by"`
}

// UpdateStatusInput carries a status change request for a delivery. A nil
// UpdatedBy marks a system actor and skips the ownership check; for user
// actors, Roles holds the roles granted to them by the token.
type UpdateStatusInput struct {
	DeliveryID uuid.UUID    `json:"delivery_id"`
	Status     string       `json:"status"`
	UpdatedBy  *uuid.UUID   `json:"updated_by"`
	Roles      entity.Roles `json:"roles"`
}

// UpdateLocationInput carries a real-time location report from a courier.
type UpdateLocationInput struct {
	DeliveryID uuid.UUID `json:"delivery_id"`
	AgentID    uuid.UUID `json:"agent_id"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
}

// TrackingInfo is the live tracking snapshot for a delivery.
type TrackingInfo struct {
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
	ETA             string `json:"eta"`
}

// DeliveryUsecase defines the interface for delivery lifecycle use cases.
type DeliveryUsecase interface {
	// CreateDelivery opens a delivery for an order and attempts to assign the
	// nearest available agent. At most one delivery may exist per order.
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)

	// ListDeliveries lists the deliveries visible to a user in a given role.
	ListDeliveries(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Delivery, error)

	// GetDelivery retrieves one delivery, scoped to what the user may see.
	GetDelivery(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*entity.Delivery, error)

	// UpdateStatus applies a status change, appends it to the history, stamps
	// the delivered-at time on "delivered", and triggers best-effort customer
	// notification and live-tracking broadcast. A user actor must be the
	// assigned agent or own the order's restaurant.
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Delivery, error)

	// UpdateLocation records a real-time location report from the assigned
	// agent and broadcasts it to the delivery's tracking topic.
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*entity.Delivery, error)

	// EstimateCost computes and persists the delivery cost from the geodesic
	// pickup-to-dropoff distance, scoped to what the user may see.
	EstimateCost(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*entity.Delivery, error)

	// TrackDelivery returns the live tracking snapshot with an ETA derived
	// from the assigned agent's last reported position, scoped to what the
	// user may see.
	TrackDelivery(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) (*TrackingInfo, error)

	// GetStatusHistory returns the delivery's status history, oldest first,
	// scoped to what the user may see.
	GetStatusHistory(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) ([]*entity.DeliveryStatusUpdate, error)

	// GetTrackingQRCode renders a PNG QR code linking to the delivery's live
	// tracking channel, scoped to what the user may see.
	GetTrackingQRCode(ctx context.Context, deliveryID, userID uuid.UUID, role entity.Role) ([]byte, error)
}
