package impl

import (
	"context"
	"testing"

	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	mockRepo "loocate/internal/mocks/repository"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service     usecase.TokenUsecase
	tokenRepo   *mockRepo.MockPushTokenRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	tokenRepo := mockRepo.NewMockPushTokenRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewTokenService(tokenRepo, profileRepo)

	return tokenServiceFixtures{
		service:     service,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
	}
}

func TestTokenService_RegisterToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().UserExists(ctx, userID).Return(true, nil)
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.PushToken")).
		Return(nil)

	token, err := fx.service.RegisterToken(ctx, userID, " ExponentPushToken[abc] ", "iOS")
	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", token.Token)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "ios", token.Platform)
	assert.Equal(t, entity.ProviderExpo, token.Family())
	assert.False(t, token.LastSeenAt.IsZero())
}

func TestTokenService_RegisterToken_UnknownPlatformHint(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().UserExists(ctx, userID).Return(true, nil)
	fx.tokenRepo.EXPECT().
		SaveToken(ctx, mock.AnythingOfType("*entity.PushToken")).
		Return(nil)

	token, err := fx.service.RegisterToken(ctx, userID, "fcm-token", "blackberry")
	require.NoError(t, err)
	assert.Equal(t, "unknown", token.Platform)
	assert.Equal(t, entity.ProviderFCM, token.Family())
}

func TestTokenService_RegisterToken_EmptyToken(t *testing.T) {
	fx := createTestTokenService(t)

	_, err := fx.service.RegisterToken(context.Background(), uuid.New(), "   ", "ios")
	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
}

func TestTokenService_RegisterToken_UnknownUser(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().UserExists(ctx, userID).Return(false, nil)

	_, err := fx.service.RegisterToken(ctx, userID, "fcm-token", "android")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTokenService_UnregisterToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		DeleteToken(ctx, userID, "fcm-token").
		Return(repository.ErrTokenNotFound)

	err := fx.service.UnregisterToken(ctx, userID, "fcm-token")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
