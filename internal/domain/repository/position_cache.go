package repository

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// CacheHit is a single entry returned by a radius search over the volatile
// position index. Distances are computed by the index and are advisory; the
// durable store remains the source of truth for actual coordinates.
type CacheHit struct {
	UserID         uuid.UUID
	DistanceMeters float64
}

// PositionCache is the volatile geo index layered in front of the durable
// position store. Entries carry no freshness information, so every hit must
// be re-validated against durable data before use. A cache failure is never
// fatal to a query; callers fall back to the durable store.
type PositionCache interface {
	// Upsert sets the cached coordinate for a user, replacing any previous
	// entry for the same user.
	Upsert(ctx context.Context, position *entity.UserPosition) error
	// SearchRadius returns user ids within radiusMeters of the center,
	// ordered nearest first, capped at limit.
	SearchRadius(ctx context.Context, longitude, latitude, radiusMeters float64, limit int) ([]CacheHit, error)
	// Remove drops a user's entry from the index.
	Remove(ctx context.Context, userID uuid.UUID) error
}
