package repository

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile lookup finds no row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads user-profile data owned by the profile
// collaborator. This engine only ever reads it; the eligibility attributes
// are consumed by the eligibility filter and the summaries by query results.
type ProfileRepository interface {
	// FindEligibilityByUsers retrieves eligibility attributes for the given
	// ids, keyed by user id. Missing users are absent from the map; callers
	// treat absence as ineligible.
	FindEligibilityByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.EligibilityAttributes, error)

	// FindSummariesByUsers retrieves public user summaries keyed by user id.
	FindSummariesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error)

	// UserExists reports whether the given user exists at all.
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}
