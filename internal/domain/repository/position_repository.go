// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for position persistence.
var (
	// ErrUserNotFound is returned when a position write references a user
	// that does not exist. The engine never creates users.
	ErrUserNotFound = errors.New("user not found")
	// ErrPositionNotFound is returned when a user has no recorded position.
	ErrPositionNotFound = errors.New("position not found")
)

// NearbyQuery bundles the parameters of a durable-store radius query.
type NearbyQuery struct {
	Longitude    float64
	Latitude     float64
	RadiusMeters float64

	// FreshSince excludes positions older than this instant.
	FreshSince time.Time

	// Limit bounds the result count.
	Limit int
}

// PositionRepository defines the durable position store. It is the source
// of truth: writes here are authoritative, the geo cache only mirrors them.
type PositionRepository interface {
	// UpsertPosition overwrites the user's position, creating it on first
	// write. UpdatedAt is monotone non-decreasing per user.
	UpsertPosition(ctx context.Context, position *entity.UserPosition) error

	// FindPositionsByUsers retrieves the current positions for the given
	// user ids. Users without a recorded position are simply absent.
	FindPositionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserPosition, error)

	// FindNearbyPositions runs the spatial radius query directly against the
	// durable store, with the freshness cutoff and the visibility,
	// verification and ban predicates baked into the query. Blocklist
	// filtering still happens in the eligibility filter.
	FindNearbyPositions(ctx context.Context, query *NearbyQuery) ([]*entity.UserPosition, error)
}
