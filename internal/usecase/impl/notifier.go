package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "fleet/internal/delivery/context"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/errors"
	"fleet/internal/usecase"

	"github.com/google/uuid"
)

type notificationDispatcher struct {
	pushTokenRepo repository.PushTokenRepository
	publisher     service.EventPublisher
	pushSender    service.PushSender
	logger        *slog.Logger
}

// NewNotificationDispatcher creates a new notification dispatcher instance.
// pushSender may be nil; it is only used as a direct-send fallback when the
// async publish fails.
func NewNotificationDispatcher(
	pushTokenRepo repository.PushTokenRepository,
	publisher service.EventPublisher,
	pushSender service.PushSender,
	logger *slog.Logger,
) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		pushTokenRepo: pushTokenRepo,
		publisher:     publisher,
		pushSender:    pushSender,
		logger:        logger,
	}
}

// DispatchStatusChanged notifies the customer about a delivery status change.
// Every failure path logs and returns; notification problems never surface to
// the operation that triggered them.
func (d *notificationDispatcher) DispatchStatusChanged(ctx context.Context, delivery *entity.Delivery, customerID uuid.UUID) {
	token, err := d.pushTokenRepo.FindTokenByUser(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrPushTokenNotFound) {
			d.logger.Debug("customer has no push token, skipping notification",
				slog.String("delivery_id", delivery.ID.String()),
				slog.String("customer_id", customerID.String()),
			)

			return
		}
		d.logger.Warn("failed to look up push token",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("customer_id", customerID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	title := "Delivery Status Update"
	body := fmt.Sprintf("Your delivery is now %s!", delivery.Status.Title())

	event := &service.DeliveryPushEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		DeliveryID: delivery.ID.String(),
		OrderID:    delivery.OrderID.String(),
		UserID:     customerID.String(),
		Title:      title,
		Body:       body,
		Data: map[string]string{
			"delivery_id": delivery.ID.String(),
			"order_id":    delivery.OrderID.String(),
			"status":      delivery.Status.String(),
		},
	}

	publishErr := d.publisher.PublishDeliveryPushEvent(ctx, event)
	if publishErr == nil {
		return
	}
	d.logger.Warn("failed to publish push event, falling back to direct send",
		slog.String("delivery_id", delivery.ID.String()),
		slog.String("error", publishErr.Error()),
	)

	if d.pushSender == nil {
		return
	}

	if err := d.pushSender.SendNotification(ctx, token.FCMToken, title, body, event.Data); err != nil {
		d.logger.Warn("direct push send failed",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("customer_id", customerID.String()),
			slog.String("error", err.Error()),
		)
	}
}
