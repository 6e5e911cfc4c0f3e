package impl

import (
	"context"
	"log/slog"
	"time"

	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"
	"loocate/internal/domain/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
)

// familyOrder fixes the fan-out order so results and audit logs are stable.
var familyOrder = []entity.ProviderFamily{entity.ProviderExpo, entity.ProviderFCM}

type dispatchService struct {
	tokenRepo repository.PushTokenRepository
	senders   map[entity.ProviderFamily]service.PushSender
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	tokenRepo repository.PushTokenRepository,
	senders []service.PushSender,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	byFamily := make(map[entity.ProviderFamily]service.PushSender, len(senders))
	for _, sender := range senders {
		byFamily[sender.Family()] = sender
	}

	return &dispatchService{
		tokenRepo: tokenRepo,
		senders:   byFamily,
		txManager: txManager,
		logger:    logger,
	}
}

// Dispatch fans a message out across provider families. It never returns an
// error: every failure mode, including not being able to load tokens at all,
// is folded into the DispatchResult so callers cannot crash on delivery.
func (s *dispatchService) Dispatch(ctx context.Context, targetIDs []uuid.UUID, tokens []string, eventType entity.EventType, message *service.PushMessage) *service.DispatchResult {
	result := &service.DispatchResult{}

	resolved, err := s.tokenRepo.FindTokenStringsByUsers(ctx, targetIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load push tokens for dispatch",
			slog.Int("target_count", len(targetIDs)),
			slog.Any("error", err))
		for _, family := range familyOrder {
			result.Reports = append(result.Reports, service.ProviderReport{
				Family:      family,
				Status:      service.StatusFailed,
				ErrorDetail: "failed to load push tokens",
			})
		}

		return result
	}

	union := unionTokens(resolved, tokens)
	if len(union) == 0 {
		// No destination is not a failure.
		return result
	}

	grouped := make(map[entity.ProviderFamily][]string, len(familyOrder))
	for _, token := range union {
		family := entity.ClassifyToken(token)
		grouped[family] = append(grouped[family], token)
	}

	for _, family := range familyOrder {
		sender, ok := s.senders[family]
		if !ok {
			if len(grouped[family]) > 0 {
				result.Reports = append(result.Reports, service.ProviderReport{
					Family:       family,
					Status:       service.StatusFailed,
					FailureCount: len(grouped[family]),
					ErrorDetail:  "no transport registered for token family",
				})
			}

			continue
		}

		result.Reports = append(result.Reports, sender.Send(ctx, grouped[family], message))
	}

	s.recordOutcome(ctx, targetIDs, eventType, result)

	return result
}

// unionTokens merges the resolved and explicit token lists, dropping
// duplicates and empty strings while preserving first-seen order.
func unionTokens(resolved, explicit []string) []string {
	seen := make(map[string]struct{}, len(resolved)+len(explicit))
	union := make([]string, 0, len(resolved)+len(explicit))
	for _, token := range append(resolved, explicit...) {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		union = append(union, token)
	}

	return union
}

// recordOutcome writes the audit rows and prunes invalid tokens in one
// transaction. Bookkeeping is best effort and never affects the result.
func (s *dispatchService) recordOutcome(ctx context.Context, targetIDs []uuid.UUID, eventType entity.EventType, result *service.DispatchResult) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		logRepo := repoFactory.NewDispatchLogRepository()
		for _, targetID := range targetIDs {
			for _, report := range result.Reports {
				entry := &entity.DispatchLog{
					ID:          uuid.New(),
					TargetID:    targetID,
					EventType:   eventType,
					Provider:    report.Family,
					Status:      string(report.Status),
					TokenCount:  report.SuccessCount + report.FailureCount,
					ErrorDetail: report.ErrorDetail,
					SentAt:      time.Now().UTC(),
				}
				if err := logRepo.SaveLog(ctx, entry); err != nil {
					return err
				}
			}
		}

		if invalid := result.InvalidTokens(); len(invalid) > 0 {
			if err := repoFactory.NewPushTokenRepository().DeleteTokensByValue(ctx, invalid); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "dispatch bookkeeping failed",
			slog.Int("target_count", len(targetIDs)),
			slog.Any("error", err))
	}
}
