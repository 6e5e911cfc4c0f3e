package usecase

import (
	"context"

	"loocate/internal/domain/entity"
	"loocate/internal/domain/service"

	"github.com/google/uuid"
)

// DispatchUsecase defines the interface for multi-provider push fan-out
type DispatchUsecase interface {
	// Dispatch fans a message out to the deduplicated union of the targets'
	// registered device tokens and any explicitly supplied tokens, split by
	// provider family. One family's failure never blocks another; the
	// aggregated outcome always comes back as a DispatchResult, never as an
	// error. An empty token union is a no-op result, not a failure.
	Dispatch(ctx context.Context, targetIDs []uuid.UUID, tokens []string, eventType entity.EventType, message *service.PushMessage) *service.DispatchResult
}
