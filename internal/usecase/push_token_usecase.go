package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PushTokenUsecase defines the interface for push token registration.
type PushTokenUsecase interface {
	// RegisterPushToken stores a user's FCM token, overwriting any previous
	// one. Registration is last-write-wins per user.
	RegisterPushToken(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
