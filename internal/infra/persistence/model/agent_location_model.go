package model

import (
	"time"

	"github.com/google/uuid"
)

// AgentLocationModel is the GORM-specific struct for the 'agent_locations' table.
// One row per agent; location reports overwrite the row in place.
type AgentLocationModel struct {
	AgentID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentLocationModel) TableName() string {
	return "agent_locations"
}
