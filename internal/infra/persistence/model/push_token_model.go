package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPushTokenModel is the GORM-specific struct for the 'user_push_tokens' table.
// One token per user, last write wins.
type UserPushTokenModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	FCMToken  string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPushTokenModel) TableName() string {
	return "user_push_tokens"
}
