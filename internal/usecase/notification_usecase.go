package usecase

import (
	"context"

	"loocate/internal/domain/entity"
	"loocate/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification orchestration use cases
type NotificationUsecase interface {
	// NotifyIfUnclaimed gates a viewer-triggered event through eligibility
	// checks and the dedup ledger, then dispatches a push to the target if
	// this is the first such event inside the TTL window. The returned bool
	// reports whether the claim was won and a dispatch attempted.
	NotifyIfUnclaimed(ctx context.Context, targetID, viewerID uuid.UUID, eventType entity.EventType) (*service.DispatchResult, bool, error)

	// NotifyNeighbors reacts to a position event: it finds fresh, eligible
	// users near the new position and notifies each of them about the new
	// neighbor, once per dedup window.
	NotifyNeighbors(ctx context.Context, event *service.PositionEvent) error
}
