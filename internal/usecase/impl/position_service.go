// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	ctxutil "loocate/internal/delivery/context"
	"loocate/internal/domain/entity"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/domain/repository"
	"loocate/internal/domain/service"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type positionService struct {
	positionRepo  repository.PositionRepository
	profileRepo   repository.ProfileRepository
	positionCache repository.PositionCache
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewPositionService creates a new position service instance
func NewPositionService(
	positionRepo repository.PositionRepository,
	profileRepo repository.ProfileRepository,
	positionCache repository.PositionCache,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PositionUsecase {
	return &positionService{
		positionRepo:  positionRepo,
		profileRepo:   profileRepo,
		positionCache: positionCache,
		publisher:     publisher,
		logger:        logger,
	}
}

// UpdatePosition validates and persists a position update. The durable write
// must succeed; the cache refresh and the event publish are best effort and
// only logged when they fail.
func (s *positionService) UpdatePosition(ctx context.Context, userID uuid.UUID, longitude, latitude float64) (*entity.UserPosition, error) {
	if !entity.ValidCoordinate(longitude, latitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	exists, err := s.profileRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	position := &entity.UserPosition{
		UserID:    userID,
		Longitude: longitude,
		Latitude:  latitude,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.positionRepo.UpsertPosition(ctx, position); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, domainerrors.ErrStoreWriteFailed.WrapMessage(err.Error())
	}

	if err := s.positionCache.Upsert(ctx, position); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh geo cache, durable store remains authoritative",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}

	event := &service.PositionEvent{
		RequestID: ctxutil.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Latitude:  latitude,
		Longitude: longitude,
		UpdatedAt: position.UpdatedAt,
	}
	if err := s.publisher.PublishPositionEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish position event",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}

	return position, nil
}

// GetPosition retrieves the user's current stored position.
func (s *positionService) GetPosition(ctx context.Context, userID uuid.UUID) (*entity.UserPosition, error) {
	positions, err := s.positionRepo.FindPositionsByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load position")
	}
	if len(positions) == 0 {
		return nil, repository.ErrPositionNotFound
	}

	return positions[0], nil
}
