package usecase

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase defines the interface for push token management use cases
type TokenUsecase interface {
	// RegisterToken saves a device token for a user, transferring ownership
	// from any previous holder and refreshing the last-seen timestamp.
	RegisterToken(ctx context.Context, userID uuid.UUID, token, platformHint string) (*entity.PushToken, error)

	// UnregisterToken removes a token owned by the user.
	UnregisterToken(ctx context.Context, userID uuid.UUID, token string) error

	// ListTokens retrieves all tokens registered by the user.
	ListTokens(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error)
}
