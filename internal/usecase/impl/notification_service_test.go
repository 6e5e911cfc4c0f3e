package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/service"
	mockRepo "loocate/internal/mocks/repository"
	mockUC "loocate/internal/mocks/usecase"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProximityConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			DefaultRadiusMeters: 500,
			MaxRadiusMeters:     5000,
			ResultLimit:         100,
			NearbyFreshness:     time.Hour,
			NeighborFreshness:   30 * time.Minute,
		},
	}
}

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service     usecase.NotificationUsecase
	profileRepo *mockRepo.MockProfileRepository
	ledger      *mockRepo.MockDedupLedger
	dispatcher  *mockUC.MockDispatchUsecase
	proximity   *mockUC.MockProximityUsecase
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ledger := mockRepo.NewMockDedupLedger(t)
	dispatcher := mockUC.NewMockDispatchUsecase(t)
	proximity := mockUC.NewMockProximityUsecase(t)

	service := NewNotificationService(profileRepo, ledger, dispatcher, proximity, testProximityConfig(), slog.Default())

	return notificationServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		ledger:      ledger,
		dispatcher:  dispatcher,
		proximity:   proximity,
	}
}

func TestNotificationService_NotifyIfUnclaimed_ClaimWon(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{targetID, viewerID}).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			targetID: discoverable(targetID),
			viewerID: discoverable(viewerID),
		}, nil)

	fx.ledger.EXPECT().
		Claim(ctx, targetID, viewerID, entity.EventProfileView).
		Return(true, nil)

	fx.profileRepo.EXPECT().
		FindSummariesByUsers(ctx, []uuid.UUID{viewerID}).
		Return(map[uuid.UUID]*entity.UserSummary{
			viewerID: {ID: viewerID, Username: "viewer", DisplayName: "The Viewer"},
		}, nil)

	fx.dispatcher.EXPECT().
		Dispatch(ctx, []uuid.UUID{targetID}, []string(nil), entity.EventProfileView, mock.AnythingOfType("*service.PushMessage")).
		Run(func(args mock.Arguments) {
			message := args.Get(4).(*service.PushMessage)
			assert.Equal(t, "New profile view", message.Title)
			assert.Equal(t, "The Viewer viewed your profile", message.Body)
			assert.Equal(t, string(entity.EventProfileView), message.Data["event_type"])
		}).
		Return(&service.DispatchResult{Reports: []service.ProviderReport{
			{Family: entity.ProviderExpo, Status: service.StatusSent, SuccessCount: 1},
		}})

	result, claimed, err := fx.service.NotifyIfUnclaimed(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.True(t, claimed)
	require.NotNil(t, result)
	assert.True(t, result.Delivered())
}

func TestNotificationService_NotifyIfUnclaimed_ClaimLost(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{targetID, viewerID}).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			targetID: discoverable(targetID),
			viewerID: discoverable(viewerID),
		}, nil)

	fx.ledger.EXPECT().
		Claim(ctx, targetID, viewerID, entity.EventSocialClick).
		Return(false, nil)

	result, claimed, err := fx.service.NotifyIfUnclaimed(ctx, targetID, viewerID, entity.EventSocialClick)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Nil(t, result)
}

func TestNotificationService_NotifyIfUnclaimed_SelfExcluded(t *testing.T) {
	fx := createTestNotificationService(t)

	userID := uuid.New()
	_, claimed, err := fx.service.NotifyIfUnclaimed(context.Background(), userID, userID, entity.EventProfileView)
	assert.ErrorIs(t, err, domainerrors.ErrSelfNotification)
	assert.False(t, claimed)
}

func TestNotificationService_NotifyIfUnclaimed_UnknownEventType(t *testing.T) {
	fx := createTestNotificationService(t)

	_, claimed, err := fx.service.NotifyIfUnclaimed(context.Background(), uuid.New(), uuid.New(), entity.EventType("mystery"))
	assert.ErrorIs(t, err, domainerrors.ErrUnknownEventType)
	assert.False(t, claimed)
}

func TestNotificationService_NotifyIfUnclaimed_BlockedPairSkipsSilently(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	target := discoverable(targetID)
	target.BlockedUserIDs = []uuid.UUID{viewerID}

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{targetID, viewerID}).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			targetID: target,
			viewerID: discoverable(viewerID),
		}, nil)

	// No claim and no dispatch: the ledger stays untouched for blocked pairs.
	result, claimed, err := fx.service.NotifyIfUnclaimed(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Nil(t, result)
}

func TestNotificationService_NotifyIfUnclaimed_MissingViewerFailsClosed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{targetID, viewerID}).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			targetID: discoverable(targetID),
		}, nil)

	result, claimed, err := fx.service.NotifyIfUnclaimed(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Nil(t, result)
}

func TestNotificationService_NotifyNeighbors(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	moverID := uuid.New()
	neighborA := uuid.New()
	neighborB := uuid.New()

	event := &service.PositionEvent{
		UserID:    moverID.String(),
		Longitude: 121.5654,
		Latitude:  25.033,
		UpdatedAt: time.Now().UTC(),
	}

	fx.proximity.EXPECT().
		FindNearbyAround(ctx, moverID, 121.5654, 25.033, 500.0, 30*time.Minute).
		Return([]*entity.NearbyUser{
			{User: entity.UserSummary{ID: neighborA, Username: "a"}},
			{User: entity.UserSummary{ID: neighborB, Username: "b"}},
		}, nil)

	attrs := func(ids ...uuid.UUID) map[uuid.UUID]*entity.EligibilityAttributes {
		out := make(map[uuid.UUID]*entity.EligibilityAttributes)
		for _, id := range ids {
			out[id] = discoverable(id)
		}

		return out
	}

	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{neighborA, moverID}).
		Return(attrs(neighborA, moverID), nil)
	fx.profileRepo.EXPECT().
		FindEligibilityByUsers(ctx, []uuid.UUID{neighborB, moverID}).
		Return(attrs(neighborB, moverID), nil)

	// Only neighbor A's claim is fresh inside the window.
	fx.ledger.EXPECT().
		Claim(ctx, neighborA, moverID, entity.EventNewNeighbor).
		Return(true, nil)
	fx.ledger.EXPECT().
		Claim(ctx, neighborB, moverID, entity.EventNewNeighbor).
		Return(false, nil)

	fx.profileRepo.EXPECT().
		FindSummariesByUsers(ctx, []uuid.UUID{moverID}).
		Return(map[uuid.UUID]*entity.UserSummary{
			moverID: {ID: moverID, Username: "mover"},
		}, nil)

	fx.dispatcher.EXPECT().
		Dispatch(ctx, []uuid.UUID{neighborA}, []string(nil), entity.EventNewNeighbor, mock.AnythingOfType("*service.PushMessage")).
		Return(&service.DispatchResult{})

	err := fx.service.NotifyNeighbors(ctx, event)
	require.NoError(t, err)
}

func TestNotificationService_NotifyNeighbors_InvalidUserID(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.NotifyNeighbors(context.Background(), &service.PositionEvent{UserID: "not-a-uuid"})
	assert.Error(t, err)
}

// atomicLedger is an in-memory DedupLedger with LoadOrStore semantics, used
// to exercise concurrent claims without Redis.
type atomicLedger struct {
	claims sync.Map
}

func (l *atomicLedger) Claim(_ context.Context, targetID, viewerID uuid.UUID, eventType entity.EventType) (bool, error) {
	key := targetID.String() + "/" + viewerID.String() + "/" + string(eventType)
	_, loaded := l.claims.LoadOrStore(key, struct{}{})

	return !loaded, nil
}

// countingDispatcher counts dispatches without delivering anything.
type countingDispatcher struct {
	calls atomic.Int64
}

func (d *countingDispatcher) Dispatch(context.Context, []uuid.UUID, []string, entity.EventType, *service.PushMessage) *service.DispatchResult {
	d.calls.Add(1)

	return &service.DispatchResult{}
}

func TestNotificationService_NotifyIfUnclaimed_ConcurrentClaimsSingleWinner(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	proximity := mockUC.NewMockProximityUsecase(t)
	ledger := &atomicLedger{}
	dispatcher := &countingDispatcher{}

	service := NewNotificationService(profileRepo, ledger, dispatcher, proximity, testProximityConfig(), slog.Default())

	targetID := uuid.New()
	viewerID := uuid.New()

	profileRepo.EXPECT().
		FindEligibilityByUsers(mock.Anything, []uuid.UUID{targetID, viewerID}).
		Return(map[uuid.UUID]*entity.EligibilityAttributes{
			targetID: discoverable(targetID),
			viewerID: discoverable(viewerID),
		}, nil)

	profileRepo.EXPECT().
		FindSummariesByUsers(mock.Anything, []uuid.UUID{viewerID}).
		Return(map[uuid.UUID]*entity.UserSummary{
			viewerID: {ID: viewerID, Username: "viewer"},
		}, nil)

	var wg sync.WaitGroup
	var claimedCount atomic.Int64
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, claimed, err := service.NotifyIfUnclaimed(context.Background(), targetID, viewerID, entity.EventProfileView)
			assert.NoError(t, err)
			if claimed {
				claimedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), claimedCount.Load())
	assert.Equal(t, int64(1), dispatcher.calls.Load())
}
