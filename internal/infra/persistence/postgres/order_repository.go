package postgres

import (
	"context"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface. The
// ordering system owns the underlying tables; this repository only reads them.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindOrderByID retrieves an order by its unique ID, resolving the restaurant
// owner in the same query for access scoping.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row struct {
		model.OrderModel
		OwnerID uuid.UUID
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.*, restaurants.owner_id AS owner_id").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("orders.id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return &entity.Order{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		RestaurantID: row.RestaurantID,
		OwnerID:      row.OwnerID,
		TotalPrice:   row.TotalPrice,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}, nil
}
