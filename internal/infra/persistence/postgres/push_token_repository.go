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

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// UpsertToken registers a user's FCM token, last write wins.
func (repo *pushTokenRepository) UpsertToken(ctx context.Context, token *entity.UserPushToken) error {
	tokenM := fromPushTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "updated_at"}),
		}).
		Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push token")
	}

	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindTokenByUser retrieves the registered token for a user.
func (repo *pushTokenRepository) FindTokenByUser(ctx context.Context, userID uuid.UUID) (*entity.UserPushToken, error) {
	var tokenM model.UserPushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPushTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find push token by user")
	}

	return toPushTokenDomain(&tokenM), nil
}

// --- Mapper Functions ---

func toPushTokenDomain(data *model.UserPushTokenModel) *entity.UserPushToken {
	if data == nil {
		return nil
	}

	return &entity.UserPushToken{
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPushTokenDomain(data *entity.UserPushToken) *model.UserPushTokenModel {
	if data == nil {
		return nil
	}

	return &model.UserPushTokenModel{
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		UpdatedAt: data.UpdatedAt,
	}
}
