package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/domain/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	profileRepo repository.ProfileRepository
	ledger      repository.DedupLedger
	dispatcher  usecase.DispatchUsecase
	proximity   usecase.ProximityUsecase
	cfg         *config.ProximityConfig
	logger      *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	profileRepo repository.ProfileRepository,
	ledger repository.DedupLedger,
	dispatcher usecase.DispatchUsecase,
	proximity usecase.ProximityUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		profileRepo: profileRepo,
		ledger:      ledger,
		dispatcher:  dispatcher,
		proximity:   proximity,
		cfg:         cfg.Proximity,
		logger:      logger,
	}
}

// NotifyIfUnclaimed gates and dispatches a viewer-triggered notification.
// Ineligible pairs are dropped silently: the caller cannot distinguish "the
// target blocked you" from "already notified", which is deliberate.
func (s *notificationService) NotifyIfUnclaimed(ctx context.Context, targetID, viewerID uuid.UUID, eventType entity.EventType) (*service.DispatchResult, bool, error) {
	if !eventType.Valid() {
		return nil, false, domainerrors.ErrUnknownEventType
	}
	if targetID == viewerID {
		return nil, false, domainerrors.ErrSelfNotification
	}

	now := time.Now().UTC()

	attrs, err := s.profileRepo.FindEligibilityByUsers(ctx, []uuid.UUID{targetID, viewerID})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load eligibility attributes")
	}

	if !s.pairEligible(targetID, viewerID, attrs, eventType, now) {
		return nil, false, nil
	}

	won, err := s.ledger.Claim(ctx, targetID, viewerID, eventType)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to claim dedup key")
	}
	if !won {
		return nil, false, nil
	}

	message, err := s.buildMessage(ctx, viewerID, eventType)
	if err != nil {
		// The claim is already burned; deliver a generic message rather
		// than dropping a won claim on a summary lookup failure.
		s.logger.WarnContext(ctx, "failed to personalize notification",
			slog.String("viewer_id", viewerID.String()),
			slog.Any("error", err))
		message = genericMessage(eventType, viewerID)
	}

	result := s.dispatcher.Dispatch(ctx, []uuid.UUID{targetID}, nil, eventType, message)

	return result, true, nil
}

// NotifyNeighbors reacts to a position event by notifying fresh, eligible
// users near the new position. Each neighbor failure is logged and skipped
// so one bad neighbor never starves the rest.
func (s *notificationService) NotifyNeighbors(ctx context.Context, event *service.PositionEvent) error {
	moverID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id in position event")
	}

	neighbors, err := s.proximity.FindNearbyAround(ctx, moverID, event.Longitude, event.Latitude, s.cfg.DefaultRadiusMeters, s.cfg.NeighborFreshness)
	if err != nil {
		return errors.Wrap(err, "failed to find neighbors")
	}

	notified := 0
	for _, neighbor := range neighbors {
		_, claimed, err := s.NotifyIfUnclaimed(ctx, neighbor.User.ID, moverID, entity.EventNewNeighbor)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to notify neighbor",
				slog.String("neighbor_id", neighbor.User.ID.String()),
				slog.String("mover_id", moverID.String()),
				slog.Any("error", err))

			continue
		}
		if claimed {
			notified++
		}
	}

	s.logger.InfoContext(ctx, "neighbor notification pass complete",
		slog.String("mover_id", moverID.String()),
		slog.Int("candidates", len(neighbors)),
		slog.Int("notified", notified))

	return nil
}

// pairEligible applies the fail-closed notification gate. The target must be
// a discoverable, unbanned account and neither side may block the other. The
// viewer must exist and be unbanned; for new-neighbor events the viewer is
// the notification's subject, so they must be discoverable too.
func (s *notificationService) pairEligible(targetID, viewerID uuid.UUID, attrs map[uuid.UUID]*entity.EligibilityAttributes, eventType entity.EventType, now time.Time) bool {
	viewer, ok := attrs[viewerID]
	if !ok || viewer == nil {
		return false
	}
	if viewer.IsBanned(now) {
		return false
	}
	if eventType == entity.EventNewNeighbor && (!viewer.IsVisible || !viewer.EmailVerified) {
		return false
	}

	eligible := eligibleCandidates(viewerID, viewer, []uuid.UUID{targetID}, attrs, now)

	return len(eligible) == 1
}

func (s *notificationService) buildMessage(ctx context.Context, viewerID uuid.UUID, eventType entity.EventType) (*service.PushMessage, error) {
	summaries, err := s.profileRepo.FindSummariesByUsers(ctx, []uuid.UUID{viewerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load viewer summary")
	}
	summary, ok := summaries[viewerID]
	if !ok {
		return nil, errors.New("viewer summary not found")
	}

	name := summary.DisplayName
	if name == "" {
		name = summary.Username
	}

	message := genericMessage(eventType, viewerID)
	switch eventType {
	case entity.EventProfileView:
		message.Body = fmt.Sprintf("%s viewed your profile", name)
	case entity.EventSocialClick:
		message.Body = fmt.Sprintf("%s opened one of your social links", name)
	case entity.EventNewNeighbor:
		message.Body = fmt.Sprintf("%s is now nearby", name)
	}

	return message, nil
}

// genericMessage builds the non-personalized fallback payload.
func genericMessage(eventType entity.EventType, viewerID uuid.UUID) *service.PushMessage {
	message := &service.PushMessage{
		Sound:       "default",
		ChannelID:   "proximity",
		CollapseKey: string(eventType),
		Data: map[string]string{
			"event_type": string(eventType),
			"viewer_id":  viewerID.String(),
		},
	}

	switch eventType {
	case entity.EventProfileView:
		message.Title = "New profile view"
		message.Body = "Someone viewed your profile"
	case entity.EventSocialClick:
		message.Title = "Social link opened"
		message.Body = "Someone opened one of your social links"
	case entity.EventNewNeighbor:
		message.Title = "New neighbor"
		message.Body = "Someone new is nearby"
	}

	return message
}
