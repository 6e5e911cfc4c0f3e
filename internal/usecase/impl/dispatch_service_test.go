package impl

import (
	"context"
	"log/slog"
	"testing"

	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"
	"loocate/internal/domain/service"
	mockRepo "loocate/internal/mocks/repository"
	mockSvc "loocate/internal/mocks/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRepoFactory hands the test's mocks to the transactional unit of work.
type fakeRepoFactory struct {
	tokens repository.PushTokenRepository
	logs   repository.DispatchLogRepository
}

func (f *fakeRepoFactory) NewPushTokenRepository() repository.PushTokenRepository {
	return f.tokens
}

func (f *fakeRepoFactory) NewDispatchLogRepository() repository.DispatchLogRepository {
	return f.logs
}

// fakeTxManager runs the unit of work directly, without a real transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service    usecase.DispatchUsecase
	tokenRepo  *mockRepo.MockPushTokenRepository
	txTokens   *mockRepo.MockPushTokenRepository
	logRepo    *mockRepo.MockDispatchLogRepository
	expoSender *mockSvc.MockPushSender
	fcmSender  *mockSvc.MockPushSender
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	tokenRepo := mockRepo.NewMockPushTokenRepository(t)
	txTokens := mockRepo.NewMockPushTokenRepository(t)
	logRepo := mockRepo.NewMockDispatchLogRepository(t)

	expoSender := mockSvc.NewMockPushSender(t)
	expoSender.EXPECT().Family().Return(entity.ProviderExpo)
	fcmSender := mockSvc.NewMockPushSender(t)
	fcmSender.EXPECT().Family().Return(entity.ProviderFCM)

	txManager := &fakeTxManager{factory: &fakeRepoFactory{tokens: txTokens, logs: logRepo}}
	service := NewDispatchService(tokenRepo, []service.PushSender{expoSender, fcmSender}, txManager, slog.Default())

	return dispatchServiceFixtures{
		service:    service,
		tokenRepo:  tokenRepo,
		txTokens:   txTokens,
		logRepo:    logRepo,
		expoSender: expoSender,
		fcmSender:  fcmSender,
	}
}

func TestDispatchService_Dispatch_SplitsByFamily(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetID := uuid.New()
	message := &service.PushMessage{Title: "hello"}

	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetID}).
		Return([]string{"ExponentPushToken[abc]", "fcm-registration-token", "ExpoPushToken[def]"}, nil)

	fx.expoSender.EXPECT().
		Send(ctx, []string{"ExponentPushToken[abc]", "ExpoPushToken[def]"}, message).
		Return(service.ProviderReport{Family: entity.ProviderExpo, Status: service.StatusSent, SuccessCount: 2})

	fx.fcmSender.EXPECT().
		Send(ctx, []string{"fcm-registration-token"}, message).
		Return(service.ProviderReport{Family: entity.ProviderFCM, Status: service.StatusSent, SuccessCount: 1})

	fx.logRepo.EXPECT().SaveLog(ctx, mock.AnythingOfType("*entity.DispatchLog")).Return(nil)

	result := fx.service.Dispatch(ctx, []uuid.UUID{targetID}, nil, entity.EventProfileView, message)
	require.NotNil(t, result)
	assert.True(t, result.Delivered())
	require.Len(t, result.Reports, 2)
	assert.Equal(t, entity.ProviderExpo, result.Reports[0].Family)
	assert.Equal(t, entity.ProviderFCM, result.Reports[1].Family)
}

func TestDispatchService_Dispatch_FamilyIsolation(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetID := uuid.New()
	message := &service.PushMessage{Title: "hello"}

	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetID}).
		Return([]string{"ExponentPushToken[abc]", "fcm-registration-token"}, nil)

	// Expo fails completely; FCM still delivers.
	fx.expoSender.EXPECT().
		Send(ctx, mock.Anything, message).
		Return(service.ProviderReport{Family: entity.ProviderExpo, Status: service.StatusFailed, FailureCount: 1, ErrorDetail: "all endpoints down"})

	fx.fcmSender.EXPECT().
		Send(ctx, mock.Anything, message).
		Return(service.ProviderReport{Family: entity.ProviderFCM, Status: service.StatusSent, SuccessCount: 1})

	fx.logRepo.EXPECT().SaveLog(ctx, mock.AnythingOfType("*entity.DispatchLog")).Return(nil)

	result := fx.service.Dispatch(ctx, []uuid.UUID{targetID}, nil, entity.EventProfileView, message)
	assert.True(t, result.Delivered())
}

func TestDispatchService_Dispatch_PrunesInvalidTokens(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetID := uuid.New()
	message := &service.PushMessage{Title: "hello"}

	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetID}).
		Return([]string{"ExponentPushToken[dead]"}, nil)

	fx.expoSender.EXPECT().
		Send(ctx, mock.Anything, message).
		Return(service.ProviderReport{
			Family:        entity.ProviderExpo,
			Status:        service.StatusFailed,
			FailureCount:  1,
			InvalidTokens: []string{"ExponentPushToken[dead]"},
		})

	fx.fcmSender.EXPECT().
		Send(ctx, mock.Anything, message).
		Return(service.ProviderReport{Family: entity.ProviderFCM, Status: service.StatusSkipped})

	fx.logRepo.EXPECT().SaveLog(ctx, mock.AnythingOfType("*entity.DispatchLog")).Return(nil)
	fx.txTokens.EXPECT().
		DeleteTokensByValue(ctx, []string{"ExponentPushToken[dead]"}).
		Return(nil)

	result := fx.service.Dispatch(ctx, []uuid.UUID{targetID}, nil, entity.EventProfileView, message)
	assert.False(t, result.Delivered())
	assert.Equal(t, []string{"ExponentPushToken[dead]"}, result.InvalidTokens())
}

func TestDispatchService_Dispatch_UnionsResolvedAndExplicitTokens(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetA := uuid.New()
	targetB := uuid.New()
	message := &service.PushMessage{Title: "hello"}

	// targetB shares a device with targetA; the explicit token duplicates a
	// resolved one and must be dropped.
	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetA, targetB}).
		Return([]string{"ExponentPushToken[abc]", "fcm-registration-token"}, nil)

	fx.expoSender.EXPECT().
		Send(ctx, []string{"ExponentPushToken[abc]", "ExpoPushToken[extra]"}, message).
		Return(service.ProviderReport{Family: entity.ProviderExpo, Status: service.StatusSent, SuccessCount: 2})

	fx.fcmSender.EXPECT().
		Send(ctx, []string{"fcm-registration-token"}, message).
		Return(service.ProviderReport{Family: entity.ProviderFCM, Status: service.StatusSent, SuccessCount: 1})

	fx.logRepo.EXPECT().SaveLog(ctx, mock.AnythingOfType("*entity.DispatchLog")).Return(nil)

	explicit := []string{"ExponentPushToken[abc]", "ExpoPushToken[extra]"}
	result := fx.service.Dispatch(ctx, []uuid.UUID{targetA, targetB}, explicit, entity.EventProfileView, message)
	require.NotNil(t, result)
	assert.True(t, result.Delivered())
}

func TestDispatchService_Dispatch_NoTokensIsNoOp(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetID}).
		Return([]string{}, nil)

	result := fx.service.Dispatch(ctx, []uuid.UUID{targetID}, nil, entity.EventProfileView, &service.PushMessage{})
	require.NotNil(t, result)
	assert.Empty(t, result.Reports)
	assert.False(t, result.Delivered())
}

func TestDispatchService_Dispatch_TokenLoadFailureNeverPanics(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.tokenRepo.EXPECT().
		FindTokenStringsByUsers(ctx, []uuid.UUID{targetID}).
		Return(nil, errors.New("db down"))

	result := fx.service.Dispatch(ctx, []uuid.UUID{targetID}, nil, entity.EventProfileView, &service.PushMessage{})
	require.NotNil(t, result)
	assert.False(t, result.Delivered())
	require.Len(t, result.Reports, 2)
	for _, report := range result.Reports {
		assert.Equal(t, service.StatusFailed, report.Status)
	}
}
