// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a read-only projection of the ordering system's order record.
// The delivery subsystem never creates or mutates orders; it only reads them
// to scope access and to find the customer to notify.
type Order struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the order.
	CustomerID   uuid.UUID `json:"customer_id"`   // The customer who placed the order.
	RestaurantID uuid.UUID `json:"restaurant_id"` // The restaurant the order was placed at.
	OwnerID      uuid.UUID `json:"owner_id"`      // The user who owns the restaurant.
	TotalPrice   float64   `json:"total_price"`   // Order total, for delivery detail views.
	Status       string    `json:"status"`        // Order lifecycle status, opaque to this subsystem.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the order was placed.
}

// UserPushToken is a user's registered FCM token for push notifications.
// One token per user; registering a new token overwrites the previous one.
type UserPushToken struct {
	UserID    uuid.UUID `json:"user_id"`    // The user this token belongs to (1:1).
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last registration.
}
