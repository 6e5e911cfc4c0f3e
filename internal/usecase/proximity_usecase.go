package usecase

import (
	"context"
	"time"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityUsecase defines the interface for radius discovery queries
type ProximityUsecase interface {
	// FindNearby returns discoverable users around the viewer's own stored
	// position, nearest first. Radius zero falls back to the configured
	// default; freshness uses the nearby window.
	FindNearby(ctx context.Context, viewerID uuid.UUID, radiusMeters float64) ([]*entity.NearbyUser, error)

	// FindNearbyAround runs the same query around an arbitrary center with
	// an explicit freshness window. The geo worker uses it with the tighter
	// neighbor window when reacting to position events.
	FindNearbyAround(ctx context.Context, viewerID uuid.UUID, longitude, latitude, radiusMeters float64, freshness time.Duration) ([]*entity.NearbyUser, error)
}
