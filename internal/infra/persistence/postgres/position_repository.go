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

// positionRepository implements the repository.PositionRepository interface.
type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository is the constructor for positionRepository.
func NewPositionRepository(db *gorm.DB) repository.PositionRepository {
	return &positionRepository{
		db: db,
	}
}

// UpsertPosition overwrites the user's stored position, creating the row on
// first write. Updates carrying a timestamp older than the stored one are
// dropped so UpdatedAt never moves backwards.
func (repo *positionRepository) UpsertPosition(ctx context.Context, position *entity.UserPosition) error {
	positionM := fromPositionDomain(position)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "excluded.updated_at >= user_positions.updated_at"},
			}},
		}).
		Create(positionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidCoordinate.WrapMessage("missing required position information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert position")
	}

	return nil
}

// FindPositionsByUsers retrieves the current positions for the given user IDs.
func (repo *positionRepository) FindPositionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserPosition, error) {
	if len(userIDs) == 0 {
		return []*entity.UserPosition{}, nil
	}

	var positionModels []*model.UserPositionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find positions by users")
	}

	positions := make([]*entity.UserPosition, 0, len(positionModels))
	for _, positionM := range positionModels {
		positions = append(positions, toPositionDomain(positionM))
	}

	return positions, nil
}

// FindNearbyPositions performs a PostGIS geographic query to find fresh positions
// of discoverable users within the radius, nearest first. Visibility, verification
// and ban predicates are part of the query; blocklist filtering happens upstream.
func (repo *positionRepository) FindNearbyPositions(ctx context.Context, query *repository.NearbyQuery) ([]*entity.UserPosition, error) {
	var positionModels []*model.UserPositionModel

	// Use PostGIS ST_DWithin for efficient geographic queries
	rawQuery := `
		SELECT p.user_id, p.latitude, p.longitude, p.updated_at, p.created_at
		FROM user_positions p
		JOIN users u ON u.id = p.user_id
		WHERE u.deleted_at IS NULL
		  AND u.is_visible = true
		  AND u.email_verified = true
		  AND NOT EXISTS (
		    SELECT 1
		    FROM user_bans b
		    WHERE b.user_id = u.id
		      AND (b.expires_at IS NULL OR b.expires_at > NOW())
		  )
		  AND p.updated_at >= ?
		  AND ST_DWithin(
		    p.location,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    ?
		  )
		ORDER BY ST_Distance(p.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)) ASC
		LIMIT ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(rawQuery,
			query.FreshSince,
			query.Longitude, query.Latitude,
			query.RadiusMeters,
			query.Longitude, query.Latitude,
			query.Limit,
		).
		Scan(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby positions")
	}

	positions := make([]*entity.UserPosition, 0, len(positionModels))
	for _, positionM := range positionModels {
		positions = append(positions, toPositionDomain(positionM))
	}

	return positions, nil
}

// --- Mapper Functions ---

// toPositionDomain converts a GORM UserPositionModel to a domain UserPosition entity.
func toPositionDomain(data *model.UserPositionModel) *entity.UserPosition {
	if data == nil {
		return nil
	}

	return &entity.UserPosition{
		UserID:    data.UserID,
		Longitude: data.Longitude,
		Latitude:  data.Latitude,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPositionDomain converts a domain UserPosition entity to a GORM UserPositionModel.
func fromPositionDomain(data *entity.UserPosition) *model.UserPositionModel {
	if data == nil {
		return nil
	}

	return &model.UserPositionModel{
		UserID:    data.UserID,
		Longitude: data.Longitude,
		Latitude:  data.Latitude,
		UpdatedAt: data.UpdatedAt,
	}
}
