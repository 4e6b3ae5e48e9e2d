// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDuplicateDelivery is returned when a delivery already exists for the order.
	ErrDuplicateDelivery = errors.New("delivery already exists for order")
)

// DeliveryRepository defines the interface for delivery-related database operations.
// It exclusively owns the Delivery table and its append-only status history.
type DeliveryRepository interface {
	// CreateDelivery persists a new delivery. Uniqueness per order is enforced
	// atomically by the storage layer; a concurrent second create for the same
	// order fails with ErrDuplicateDelivery.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindDeliveryByID retrieves a delivery by its unique ID.
	FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindDeliveryByOrder retrieves the delivery for a specific order.
	FindDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)

	// ListDeliveriesForUser lists deliveries visible to a user in a given role:
	// customers see deliveries for their own orders, delivery agents see
	// deliveries assigned to them, owners see deliveries for their restaurants'
	// orders. Any other role sees an empty result.
	ListDeliveriesForUser(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Delivery, error)

	// UpdateDelivery persists changes to an existing delivery.
	UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// UpdateCurrentLocation overwrites the delivery's current-location field.
	UpdateCurrentLocation(ctx context.Context, deliveryID uuid.UUID, location string) error

	// AppendStatusUpdate appends an entry to the delivery's status history.
	AppendStatusUpdate(ctx context.Context, update *entity.DeliveryStatusUpdate) error

	// ListStatusUpdates returns the delivery's history ordered by timestamp ascending.
	ListStatusUpdates(ctx context.Context, deliveryID uuid.UUID) ([]*entity.DeliveryStatusUpdate, error)
}
