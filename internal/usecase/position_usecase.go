// Package usecase defines the application-facing interfaces of the engine.
package usecase

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// PositionUsecase defines the interface for position ingestion use cases
type PositionUsecase interface {
	// UpdatePosition validates and persists a position update for a user,
	// refreshes the geo cache and publishes a position event for async
	// neighbor detection. The durable write is authoritative; cache and
	// publish failures degrade silently.
	UpdatePosition(ctx context.Context, userID uuid.UUID, longitude, latitude float64) (*entity.UserPosition, error)

	// GetPosition retrieves the user's current stored position.
	GetPosition(ctx context.Context, userID uuid.UUID) (*entity.UserPosition, error)
}
