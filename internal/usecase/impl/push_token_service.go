package impl

import (
	"context"
	"strings"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/errors"
	"fleet/internal/usecase"

	"github.com/google/uuid"
)

type pushTokenService struct {
	pushTokenRepo repository.PushTokenRepository
}

// NewPushTokenService creates a new push token service instance
func NewPushTokenService(pushTokenRepo repository.PushTokenRepository) usecase.PushTokenUsecase {
	return &pushTokenService{
		pushTokenRepo: pushTokenRepo,
	}
}

// RegisterPushToken stores a user's FCM token, overwriting any previous one.
func (s *pushTokenService) RegisterPushToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	fcmToken = strings.TrimSpace(fcmToken)
	if fcmToken == "" {
		return domainerrors.ErrPushTokenMissing
	}

	token := &entity.UserPushToken{
		UserID:    userID,
		FCMToken:  fcmToken,
		UpdatedAt: time.Now(),
	}

	if err := s.pushTokenRepo.UpsertToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to register push token")
	}

	return nil
}
