// Package entity contains the core business objects of the project.
package entity

import "strings"

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

const (
	// DeliveryStatusPending indicates the delivery is created and waiting for an agent.
	DeliveryStatusPending DeliveryStatus = "pending"
	// DeliveryStatusAssigned indicates an agent has been assigned.
	DeliveryStatusAssigned DeliveryStatus = "assigned"
	// DeliveryStatusInTransit indicates the agent is on the way to the customer.
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	// DeliveryStatusDelivered indicates the delivery completed successfully (terminal).
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	// DeliveryStatusFailed indicates the delivery could not be completed (terminal).
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusAssigned, DeliveryStatusInTransit,
		DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the delivery lifecycle.
// Note that the transition engine deliberately does not reject transitions
// out of terminal states; this is only informational.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusFailed
}

// Title converts the underscore-separated status token to title case for
// user-facing messages, e.g. "in_transit" -> "In Transit".
func (s DeliveryStatus) Title() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
