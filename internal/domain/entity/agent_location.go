// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentLocation is the last known position of a delivery agent. There is at
// most one row per agent; each location report overwrites it in place, no
// history is retained. Staleness is not checked by consumers.
type AgentLocation struct {
	AgentID   uuid.UUID `json:"agent_id"`   // The agent this location belongs to (1:1).
	Latitude  float64   `json:"latitude"`   // Geographic latitude in decimal degrees.
	Longitude float64   `json:"longitude"`  // Geographic longitude in decimal degrees.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last location report.
}
