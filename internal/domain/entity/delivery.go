// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is the fulfillment record tracking one order's physical transport
// from restaurant to customer. Exactly one delivery may exist per order.
type Delivery struct {
	ID              uuid.UUID      `json:"id"`               // The Global Unique Identifier (GUID) for the delivery.
	OrderID         uuid.UUID      `json:"order_id"`         // The order this delivery fulfills (1:1, immutable after creation).
	AgentID         *uuid.UUID     `json:"agent_id"`         // The assigned delivery agent. Nil until assignment succeeds.
	DeliveryAddress string         `json:"delivery_address"` // Free-text address the customer entered.
	PickupLocation  string         `json:"pickup_location"`  // Geocoded restaurant location ("lat, lng"), may be empty.
	DropoffLocation string         `json:"dropoff_location"` // Geocoded customer address ("lat, lng"), may be empty.
	CurrentLocation string         `json:"current_location"` // Last reported real-time location, may be empty.
	Cost            *float64       `json:"cost"`             // Delivery cost; nil until estimated.
	Status          DeliveryStatus `json:"status"`           // Current lifecycle status.
	DeliveredAt     *time.Time     `json:"delivered_at"`     // Set only when the delivery reaches "delivered".
	CreatedAt       time.Time      `json:"created_at"`       // Timestamp of when this delivery was created.
	UpdatedAt       time.Time      `json:"updated_at"`       // Timestamp of the last modification.
}

// DeliveryStatusUpdate is a single entry in a delivery's append-only status
// history. Entries are never mutated or deleted once created.
type DeliveryStatusUpdate struct {
	ID         uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the history entry.
	DeliveryID uuid.UUID      `json:"delivery_id"` // The delivery this entry belongs to.
	Status     DeliveryStatus `json:"status"`     // The status that was applied.
	UpdatedAt  time.Time      `json:"updated_at"` // When the status was applied. Immutable.
	UpdatedBy  *uuid.UUID     `json:"updated_by"` // The acting user. Nil for system-triggered updates.
}
