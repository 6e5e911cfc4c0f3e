package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	mockRepo "loocate/internal/mocks/repository"
	mockSvc "loocate/internal/mocks/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// proximityServiceFixtures holds all test dependencies for proximity service tests.
type proximityServiceFixtures struct {
	service       usecase.ProximityUsecase
	positionRepo  *mockRepo.MockPositionRepository
	profileRepo   *mockRepo.MockProfileRepository
	positionCache *mockRepo.MockPositionCache
	presence      *mockSvc.MockPresenceTracker
}

func createTestProximityService(t *testing.T) proximityServiceFixtures {
	positionRepo := mockRepo.NewMockPositionRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	positionCache := mockRepo.NewMockPositionCache(t)
	presence := mockSvc.NewMockPresenceTracker(t)

	cfg := &config.Config{
		Proximity: &config.ProximityConfig{
			DefaultRadiusMeters: 500,
			MaxRadiusMeters:     5000,
			ResultLimit:         100,
			NearbyFreshness:     time.Hour,
			NeighborFreshness:   30 * time.Minute,
		},
	}

	service := NewProximityService(positionRepo, profileRepo, positionCache, presence, cfg, slog.Default())

	return proximityServiceFixtures{
		service:       service,
		positionRepo:  positionRepo,
		profileRepo:   profileRepo,
		positionCache: positionCache,
		presence:      presence,
	}
}

func TestProximityService_FindNearbyAround_CacheHitWithRevalidation(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	nearID := uuid.New()
	staleID := uuid.New()
	goneID := uuid.New()
	now := time.Now().UTC()

	// Cache answers with three candidates; only one survives re-validation.
	fx.positionCache.EXPECT().
		SearchRadius(ctx, 121.5654, 25.033, 1000.0, 100).
		Return([]repository.CacheHit{
			{UserID: nearID, DistanceMeters: 120},
			{UserID: staleID, DistanceMeters: 200},
			{UserID: goneID, DistanceMeters: 300},
		}, nil)

	fx.positionRepo.EXPECT().
		FindPositionsByUsers(ctx, []uuid.UUID{nearID, staleID, goneID}).
		Return([]*entity.UserPosition{
			{UserID: nearID, Longitude: 121.5665, Latitude: 25.0335, UpdatedAt: now.Add(-time.Minute)},
			{UserID: staleID, Longitude: 121.566, Latitude: 25.034, UpdatedAt: now.Add(-2 * time.Hour)},
		}, nil)

	// The candidate with no durable row gets evicted from the cache.
	fx.positionCache.EXPECT().Remove(ctx, goneID).Return(nil)

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			nearID:   discoverable(nearID),
			viewerID: discoverable(viewerID),
		}, nil)

	fx.profileRepo.EXPECT().
		FindSummariesByUsers(ctx, []uuid.UUID{nearID}).
		Return(map[uuid.UUID]*entity.UserSummary{
			nearID: {ID: nearID, Username: "near"},
		}, nil)

	fx.presence.EXPECT().IsOnline(nearID).Return(true)

	results, err := fx.service.FindNearbyAround(ctx, viewerID, 121.5654, 25.033, 1000, time.Hour)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, nearID, results[0].User.ID)
	assert.True(t, results[0].IsOnline)
	assert.Greater(t, results[0].DistanceMeters, 0.0)
	assert.Less(t, results[0].DistanceMeters, 1000.0)
}

func TestProximityService_FindNearbyAround_CacheFailureFallsBack(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	otherID := uuid.New()
	now := time.Now().UTC()

	fx.positionCache.EXPECT().
		SearchRadius(ctx, 121.5654, 25.033, 1000.0, 100).
		Return(nil, errors.New("redis down"))

	fx.positionRepo.EXPECT().
		FindNearbyPositions(ctx, mock.AnythingOfType("*repository.NearbyQuery")).
		Return([]*entity.UserPosition{
			{UserID: otherID, Longitude: 121.566, Latitude: 25.0335, UpdatedAt: now.Add(-time.Minute)},
		}, nil)

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			otherID:  discoverable(otherID),
			viewerID: discoverable(viewerID),
		}, nil)

	fx.profileRepo.EXPECT().
		FindSummariesByUsers(ctx, []uuid.UUID{otherID}).
		Return(map[uuid.UUID]*entity.UserSummary{
			otherID: {ID: otherID, Username: "other"},
		}, nil)

	fx.presence.EXPECT().IsOnline(otherID).Return(false)

	results, err := fx.service.FindNearbyAround(ctx, viewerID, 121.5654, 25.033, 1000, time.Hour)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, otherID, results[0].User.ID)
	assert.False(t, results[0].IsOnline)
}

func TestProximityService_FindNearbyAround_ColdCacheUsesDurableStore(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	fx.positionCache.EXPECT().
		SearchRadius(ctx, 121.5654, 25.033, 1000.0, 100).
		Return([]repository.CacheHit{}, nil)

	fx.positionRepo.EXPECT().
		FindNearbyPositions(ctx, mock.AnythingOfType("*repository.NearbyQuery")).
		Return([]*entity.UserPosition{}, nil)

	results, err := fx.service.FindNearbyAround(ctx, viewerID, 121.5654, 25.033, 1000, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProximityService_FindNearbyAround_InvalidCoordinate(t *testing.T) {
	fx := createTestProximityService(t)

	_, err := fx.service.FindNearbyAround(context.Background(), uuid.New(), 200, 25, 1000, time.Hour)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestProximityService_FindNearbyAround_RadiusTooLarge(t *testing.T) {
	fx := createTestProximityService(t)

	_, err := fx.service.FindNearbyAround(context.Background(), uuid.New(), 121.5, 25.0, 10000, time.Hour)
	assert.ErrorIs(t, err, domainerrors.ErrRadiusTooLarge)
}

func TestProximityService_FindNearby_ViewerWithoutPosition(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	fx.positionRepo.EXPECT().
		FindPositionsByUsers(ctx, []uuid.UUID{viewerID}).
		Return([]*entity.UserPosition{}, nil)

	_, err := fx.service.FindNearby(ctx, viewerID, 1000)
	assert.ErrorIs(t, err, repository.ErrPositionNotFound)
}

func TestProximityService_FindNearbyAround_ResultsSortedByDistance(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	farID := uuid.New()
	nearID := uuid.New()
	now := time.Now().UTC()

	fx.positionCache.EXPECT().
		SearchRadius(ctx, 121.5654, 25.033, 2000.0, 100).
		Return(nil, errors.New("redis down"))

	// Durable store returns the far candidate first on purpose.
	fx.positionRepo.EXPECT().
		FindNearbyPositions(ctx, mock.AnythingOfType("*repository.NearbyQuery")).
		Return([]*entity.UserPosition{
			{UserID: farID, Longitude: 121.575, Latitude: 25.04, UpdatedAt: now},
			{UserID: nearID, Longitude: 121.566, Latitude: 25.0335, UpdatedAt: now},
		}, nil)

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			farID:    discoverable(farID),
			nearID:   discoverable(nearID),
			viewerID: discoverable(viewerID),
		}, nil)

	fx.profileRepo.EXPECT().
		FindSummariesByUsers(ctx, mock.Anything).
		Return(map[uuid.UUID]*entity.UserSummary{
			farID:  {ID: farID, Username: "far"},
			nearID: {ID: nearID, Username: "near"},
		}, nil)

	fx.presence.EXPECT().IsOnline(mock.Anything).Return(false)

	results, err := fx.service.FindNearbyAround(ctx, viewerID, 121.5654, 25.033, 2000, time.Hour)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, nearID, results[0].User.ID)
	assert.Equal(t, farID, results[1].User.ID)
	assert.Less(t, results[0].DistanceMeters, results[1].DistanceMeters)
}
