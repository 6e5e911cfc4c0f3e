// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"
	"loocate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindEligibilityByUsers retrieves the eligibility attributes for the given
// user IDs. Soft-deleted users are treated as missing and absent from the map.
func (repo *profileRepository) FindEligibilityByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.EligibilityAttributes, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]*entity.EligibilityAttributes{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", userIDs).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users for eligibility")
	}

	attributes := make(map[uuid.UUID]*entity.EligibilityAttributes, len(userModels))
	for _, userM := range userModels {
		attributes[userM.ID] = &entity.EligibilityAttributes{
			UserID:        userM.ID,
			IsVisible:     userM.IsVisible,
			EmailVerified: userM.EmailVerified,
		}
	}

	var banModels []*model.UserBanModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&banModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bans for eligibility")
	}
	for _, banM := range banModels {
		attrs, ok := attributes[banM.UserID]
		if !ok {
			continue
		}
		if banM.ExpiresAt == nil {
			attrs.BannedPermanent = true
		} else {
			attrs.BannedUntil = banM.ExpiresAt
		}
	}

	var blockModels []*model.UserBlockModel
	if err := repo.db.WithContext(ctx).
		Where("blocker_id IN ?", userIDs).
		Find(&blockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blocks for eligibility")
	}
	for _, blockM := range blockModels {
		if attrs, ok := attributes[blockM.BlockerID]; ok {
			attrs.BlockedUserIDs = append(attrs.BlockedUserIDs, blockM.BlockedID)
		}
	}

	return attributes, nil
}

// FindSummariesByUsers retrieves public user summaries keyed by user ID.
func (repo *profileRepository) FindSummariesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]*entity.UserSummary{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", userIDs).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user summaries")
	}

	summaries := make(map[uuid.UUID]*entity.UserSummary, len(userModels))
	for _, userM := range userModels {
		summaries[userM.ID] = &entity.UserSummary{
			ID:          userM.ID,
			Username:    userM.Username,
			DisplayName: userM.DisplayName,
			Bio:         userM.Bio,
			AvatarURL:   userM.AvatarURL,
		}
	}

	return summaries, nil
}

// UserExists reports whether a non-deleted user with the given ID exists.
func (repo *profileRepository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}
