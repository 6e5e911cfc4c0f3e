package repository

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when an unregister targets an unknown token.
var ErrTokenNotFound = errors.New("push token not found")

// PushTokenRepository defines the push token store. Tokens are unique
// system-wide; saving a token already owned by a different user transfers
// ownership to the new user rather than creating a duplicate.
type PushTokenRepository interface {
	// SaveToken upserts a token for a user, refreshing its last-seen
	// timestamp and transferring ownership if another user held it.
	SaveToken(ctx context.Context, token *entity.PushToken) error

	// DeleteToken removes a token owned by the given user.
	DeleteToken(ctx context.Context, userID uuid.UUID, token string) error

	// FindTokensByUser retrieves all tokens registered by one user.
	FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error)

	// FindTokenStringsByUsers retrieves the distinct token strings
	// registered by any of the given users.
	FindTokenStringsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error)

	// DeleteTokensByValue removes tokens by raw value regardless of owner,
	// used to prune tokens the provider reported as invalid.
	DeleteTokensByValue(ctx context.Context, tokens []string) error
}
