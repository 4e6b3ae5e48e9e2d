package postgres

import (
	"context"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateDelivery persists a new delivery. The unique index on order_id decides
// the winner of a concurrent double-create; the loser gets ErrDuplicateDelivery.
func (repo *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDelivery
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	// Update the entity with generated values
	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindDeliveryByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindDeliveryByOrder retrieves the delivery for a specific order.
func (repo *deliveryRepository) FindDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by order")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// ListDeliveriesForUser lists deliveries visible to a user in a given role.
func (repo *deliveryRepository) ListDeliveriesForUser(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	query := repo.db.WithContext(ctx).Model(&model.DeliveryModel{})

	switch role {
	case entity.RoleCustomer:
		query = query.
			Joins("JOIN orders ON orders.id = deliveries.order_id").
			Where("orders.customer_id = ?", userID)
	case entity.RoleDeliveryAgent:
		query = query.Where("deliveries.agent_id = ?", userID)
	case entity.RoleOwner:
		query = query.
			Joins("JOIN orders ON orders.id = deliveries.order_id").
			Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
			Where("restaurants.owner_id = ?", userID)
	default:
		return []*entity.Delivery{}, nil
	}

	if err := query.Order("deliveries.created_at DESC").Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries for user")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// UpdateDelivery persists changes to an existing delivery.
func (repo *deliveryRepository) UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]interface{}{
			"agent_id":         deliveryM.AgentID,
			"pickup_location":  deliveryM.PickupLocation,
			"dropoff_location": deliveryM.DropoffLocation,
			"current_location": deliveryM.CurrentLocation,
			"cost":             deliveryM.Cost,
			"status":           deliveryM.Status,
			"delivered_at":     deliveryM.DeliveredAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// UpdateCurrentLocation overwrites the delivery's current-location field.
func (repo *deliveryRepository) UpdateCurrentLocation(ctx context.Context, deliveryID uuid.UUID, location string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", deliveryID).
		Update("current_location", location)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update current location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// AppendStatusUpdate appends an entry to the delivery's status history.
func (repo *deliveryRepository) AppendStatusUpdate(ctx context.Context, update *entity.DeliveryStatusUpdate) error {
	updateM := fromStatusUpdateDomain(update)

	if err := repo.db.WithContext(ctx).Create(updateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeliveryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append status update")
	}

	update.ID = updateM.ID

	return nil
}

// ListStatusUpdates returns the delivery's history ordered by timestamp ascending.
func (repo *deliveryRepository) ListStatusUpdates(ctx context.Context, deliveryID uuid.UUID) ([]*entity.DeliveryStatusUpdate, error) {
	var updateModels []*model.DeliveryStatusUpdateModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("updated_at ASC").
		Find(&updateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list status updates")
	}

	updates := make([]*entity.DeliveryStatusUpdate, 0, len(updateModels))
	for _, updateM := range updateModels {
		updates = append(updates, toStatusUpdateDomain(updateM))
	}

	return updates, nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:              data.ID,
		OrderID:         data.OrderID,
		AgentID:         data.AgentID,
		DeliveryAddress: data.DeliveryAddress,
		PickupLocation:  data.PickupLocation,
		DropoffLocation: data.DropoffLocation,
		CurrentLocation: data.CurrentLocation,
		Cost:            data.Cost,
		Status:          entity.DeliveryStatus(data.Status),
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		AgentID:         data.AgentID,
		DeliveryAddress: data.DeliveryAddress,
		PickupLocation:  data.PickupLocation,
		DropoffLocation: data.DropoffLocation,
		CurrentLocation: data.CurrentLocation,
		Cost:            data.Cost,
		Status:          data.Status.String(),
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toStatusUpdateDomain converts a GORM DeliveryStatusUpdateModel to a domain entity.
func toStatusUpdateDomain(data *model.DeliveryStatusUpdateModel) *entity.DeliveryStatusUpdate {
	if data == nil {
		return nil
	}

	return &entity.DeliveryStatusUpdate{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		Status:     entity.DeliveryStatus(data.Status),
		UpdatedAt:  data.UpdatedAt,
		UpdatedBy:  data.UpdatedBy,
	}
}

// fromStatusUpdateDomain converts a domain entity to a GORM DeliveryStatusUpdateModel.
func fromStatusUpdateDomain(data *entity.DeliveryStatusUpdate) *model.DeliveryStatusUpdateModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryStatusUpdateModel{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		Status:     data.Status.String(),
		UpdatedAt:  data.UpdatedAt,
		UpdatedBy:  data.UpdatedBy,
	}
}
