// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/infra/persistence/model"

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

// SaveToken upserts a push token. Registering a token that another user
// currently holds moves it to the new owner instead of failing, so a shared
// device always notifies its most recent account.
func (repo *pushTokenRepository) SaveToken(ctx context.Context, token *entity.PushToken) error {
	tokenM := fromPushTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "last_seen_at", "updated_at"}),
		}).
		Create(tokenM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTokenRequired.WrapMessage("missing required token information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to save push token")
	}

	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// DeleteToken removes a token owned by the given user.
func (repo *pushTokenRepository) DeleteToken(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&model.PushTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// FindTokensByUser retrieves all tokens registered by one user.
func (repo *pushTokenRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_seen_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens by user")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens, nil
}

// FindTokenStringsByUsers retrieves the distinct token strings registered by
// any of the given users.
func (repo *pushTokenRepository) FindTokenStringsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error) {
	if len(userIDs) == 0 {
		return []string{}, nil
	}

	var tokens []string

	if err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Distinct("token").
		Where("user_id IN ?", userIDs).
		Pluck("token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find token strings by users")
	}

	return tokens, nil
}

// DeleteTokensByValue removes tokens by raw value regardless of owner. Used
// to prune tokens a push provider reported as permanently invalid.
func (repo *pushTokenRepository) DeleteTokensByValue(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.PushTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push tokens by value")
	}

	return nil
}

// --- Mapper Functions ---

// toPushTokenDomain converts a GORM PushTokenModel to a domain PushToken entity.
func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		Token:      data.Token,
		UserID:     data.UserID,
		Platform:   data.Platform,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromPushTokenDomain converts a domain PushToken entity to a GORM PushTokenModel.
func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		Token:      data.Token,
		UserID:     data.UserID,
		Platform:   data.Platform,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
