// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// dispatchLogRepository implements the repository.DispatchLogRepository interface.
type dispatchLogRepository struct {
	db *gorm.DB
}

// NewDispatchLogRepository is the constructor for dispatchLogRepository.
func NewDispatchLogRepository(db *gorm.DB) repository.DispatchLogRepository {
	return &dispatchLogRepository{
		db: db,
	}
}

// SaveLog persists a single dispatch log entry.
func (repo *dispatchLogRepository) SaveLog(ctx context.Context, log *entity.DispatchLog) error {
	logM := fromDispatchLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create dispatch log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.SentAt = logM.SentAt

	return nil
}

// --- Mapper Functions ---

// fromDispatchLogDomain converts a domain DispatchLog entity to a GORM DispatchLogModel.
func fromDispatchLogDomain(data *entity.DispatchLog) *model.DispatchLogModel {
	if data == nil {
		return nil
	}

	return &model.DispatchLogModel{
		ID:          data.ID,
		TargetID:    data.TargetID,
		EventType:   string(data.EventType),
		Provider:    string(data.Provider),
		Status:      data.Status,
		TokenCount:  data.TokenCount,
		ErrorDetail: data.ErrorDetail,
		SentAt:      data.SentAt,
	}
}
