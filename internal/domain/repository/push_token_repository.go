package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPushTokenNotFound is returned when a user has no registered push token.
var ErrPushTokenNotFound = errors.New("push token not found")

// PushTokenRepository defines the interface for push token persistence.
type PushTokenRepository interface {
	// UpsertToken registers a user's FCM token, overwriting any previously
	// registered token (last-write-wins, no history).
	UpsertToken(ctx context.Context, token *entity.UserPushToken) error

	// FindTokenByUser retrieves the registered token for a user.
	FindTokenByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPushToken, error)
}
