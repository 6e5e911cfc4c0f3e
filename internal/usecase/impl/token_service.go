package impl

import (
	"context"
	"strings"
	"time"

	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type tokenService struct {
	tokenRepo   repository.PushTokenRepository
	profileRepo repository.ProfileRepository
}

// NewTokenService creates a new push token service instance
func NewTokenService(
	tokenRepo repository.PushTokenRepository,
	profileRepo repository.ProfileRepository,
) usecase.TokenUsecase {
	return &tokenService{
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
	}
}

// RegisterToken saves a device token for a user. A token previously owned by
// another account moves to this user, so a shared device always notifies the
// most recent login.
func (s *tokenService) RegisterToken(ctx context.Context, userID uuid.UUID, token, platformHint string) (*entity.PushToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrTokenRequired
	}

	exists, err := s.profileRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	pushToken := &entity.PushToken{
		Token:      token,
		UserID:     userID,
		Platform:   entity.NormalizePlatform(platformHint),
		LastSeenAt: time.Now().UTC(),
	}

	if err := s.tokenRepo.SaveToken(ctx, pushToken); err != nil {
		return nil, err
	}

	return pushToken, nil
}

// UnregisterToken removes a token owned by the user.
func (s *tokenService) UnregisterToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrTokenRequired
	}

	return s.tokenRepo.DeleteToken(ctx, userID, token)
}

// ListTokens retrieves all tokens registered by the user.
func (s *tokenService) ListTokens(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error) {
	return s.tokenRepo.FindTokensByUser(ctx, userID)
}
