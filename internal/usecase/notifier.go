package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationDispatcher sends best-effort push notifications about delivery
// lifecycle changes. Implementations log failures and never surface them; a
// broken notification pipeline must not fail a status update.
type NotificationDispatcher interface {
	// DispatchStatusChanged notifies the customer that their delivery entered
	// a new status. A customer without a registered push token is a silent
	// no-op.
	DispatchStatusChanged(ctx context.Context, delivery *entity.Delivery, customerID uuid.UUID)
}
