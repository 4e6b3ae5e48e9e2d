package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// The unique index on order_id enforces the one-delivery-per-order rule at the
// storage layer, making concurrent creates race-safe.
type DeliveryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	PickupLocation  string     `gorm:"type:text"`
	DropoffLocation string     `gorm:"type:text"`
	CurrentLocation string     `gorm:"type:text"`
	Cost            *float64   `gorm:"type:decimal(10,2)"`
	Status          string     `gorm:"type:text;not null;default:'pending';index"`
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// DeliveryStatusUpdateModel is the GORM-specific struct for the
// 'delivery_status_updates' table. Rows are append-only.
type DeliveryStatusUpdateModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeliveryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:text;not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
	UpdatedBy  *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryStatusUpdateModel) TableName() string {
	return "delivery_status_updates"
}
