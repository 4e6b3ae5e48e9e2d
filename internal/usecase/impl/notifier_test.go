package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestDispatcher(t *testing.T) (
	usecase.NotificationDispatcher,
	*mockRepo.MockPushTokenRepository,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockPushSender,
) {
	pushTokenRepo := mockRepo.NewMockPushTokenRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dispatcher := NewNotificationDispatcher(pushTokenRepo, publisher, pushSender, logger)

	return dispatcher, pushTokenRepo, publisher, pushSender
}

func testDelivery() *entity.Delivery {
	return &entity.Delivery{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		Status:  entity.DeliveryStatusInTransit,
	}
}

func TestNotificationDispatcher_NoTokenIsSilentNoop(t *testing.T) {
	dispatcher, pushTokenRepo, _, _ := createTestDispatcher(t)
	ctx := context.Background()
	customerID := uuid.New()

	pushTokenRepo.EXPECT().FindTokenByUser(ctx, customerID).Return(nil, repository.ErrPushTokenNotFound)

	// No publisher or sender expectations: nothing else may be called.
	dispatcher.DispatchStatusChanged(ctx, testDelivery(), customerID)
}

func TestNotificationDispatcher_PublishesEvent(t *testing.T) {
	dispatcher, pushTokenRepo, publisher, _ := createTestDispatcher(t)
	ctx := context.Background()
	customerID := uuid.New()
	delivery := testDelivery()

	pushTokenRepo.EXPECT().FindTokenByUser(ctx, customerID).
		Return(&entity.UserPushToken{UserID: customerID, FCMToken: "token-1"}, nil)
	publisher.EXPECT().PublishDeliveryPushEvent(ctx, mock.MatchedBy(func(e *service.DeliveryPushEvent) bool {
		return e.Title == "Delivery Status Update" &&
			e.Body == "Your delivery is now In Transit!" &&
			e.UserID == customerID.String() &&
			e.Data["status"] == "in_transit"
	})).Return(nil)

	dispatcher.DispatchStatusChanged(ctx, delivery, customerID)
}

func TestNotificationDispatcher_FallsBackToDirectSend(t *testing.T) {
	dispatcher, pushTokenRepo, publisher, pushSender := createTestDispatcher(t)
	ctx := context.Background()
	customerID := uuid.New()
	delivery := testDelivery()

	pushTokenRepo.EXPECT().FindTokenByUser(ctx, customerID).
		Return(&entity.UserPushToken{UserID: customerID, FCMToken: "token-1"}, nil)
	publisher.EXPECT().PublishDeliveryPushEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	pushSender.EXPECT().
		SendNotification(ctx, "token-1", "Delivery Status Update", "Your delivery is now In Transit!", mock.Anything).
		Return(nil)

	dispatcher.DispatchStatusChanged(ctx, delivery, customerID)
}

// A completely broken pipeline still must not panic or propagate anything.
func TestNotificationDispatcher_TotalFailureIsSwallowed(t *testing.T) {
	dispatcher, pushTokenRepo, publisher, pushSender := createTestDispatcher(t)
	ctx := context.Background()
	customerID := uuid.New()

	pushTokenRepo.EXPECT().FindTokenByUser(ctx, customerID).
		Return(&entity.UserPushToken{UserID: customerID, FCMToken: "token-1"}, nil)
	publisher.EXPECT().PublishDeliveryPushEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	pushSender.EXPECT().SendNotification(ctx, "token-1", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm down"))

	assert.NotPanics(t, func() {
		dispatcher.DispatchStatusChanged(ctx, testDelivery(), customerID)
	})
}

func TestNotificationDispatcher_TokenLookupErrorIsSwallowed(t *testing.T) {
	dispatcher, pushTokenRepo, _, _ := createTestDispatcher(t)
	ctx := context.Background()
	customerID := uuid.New()

	pushTokenRepo.EXPECT().FindTokenByUser(ctx, customerID).Return(nil, errors.New("db down"))

	assert.NotPanics(t, func() {
		dispatcher.DispatchStatusChanged(ctx, testDelivery(), customerID)
	})
}
