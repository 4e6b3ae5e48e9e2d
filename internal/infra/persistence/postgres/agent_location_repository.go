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
	"gorm.io/gorm/clause"
)

// agentLocationRepository implements the repository.AgentLocationRepository interface.
type agentLocationRepository struct {
	db *gorm.DB
}

// NewAgentLocationRepository is the constructor for agentLocationRepository.
func NewAgentLocationRepository(db *gorm.DB) repository.AgentLocationRepository {
	return &agentLocationRepository{
		db: db,
	}
}

// UpsertLocation overwrites the agent's location in place. No history is kept.
func (repo *agentLocationRepository) UpsertLocation(ctx context.Context, location *entity.AgentLocation) error {
	locationM := fromAgentLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert agent location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByAgent retrieves the last reported location for one agent.
func (repo *agentLocationRepository) FindByAgent(ctx context.Context, agentID uuid.UUID) (*entity.AgentLocation, error) {
	var locationM model.AgentLocationModel

	if err := repo.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent location")
	}

	return toAgentLocationDomain(&locationM), nil
}

// ListActiveAgentLocations lists the locations of all active delivery agents.
// Ordering by agent ID keeps assignment tie-breaking deterministic.
func (repo *agentLocationRepository) ListActiveAgentLocations(ctx context.Context) ([]*entity.AgentLocation, error) {
	var locationModels []*model.AgentLocationModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("agent_id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active agent locations")
	}

	locations := make([]*entity.AgentLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toAgentLocationDomain(locationM))
	}

	return locations, nil
}

// --- Mapper Functions ---

func toAgentLocationDomain(data *model.AgentLocationModel) *entity.AgentLocation {
	if data == nil {
		return nil
	}

	return &entity.AgentLocation{
		AgentID:   data.AgentID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAgentLocationDomain(data *entity.AgentLocation) *model.AgentLocationModel {
	if data == nil {
		return nil
	}

	return &model.AgentLocationModel{
		AgentID:   data.AgentID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		IsActive:  true,
		UpdatedAt: data.UpdatedAt,
	}
}
