package entity

import (
	"time"

	"github.com/google/uuid"
)

// DispatchLog records the outcome of one notification dispatch attempt for
// one provider family, kept for delivery audits.
type DispatchLog struct {
	ID          uuid.UUID      `json:"id"`
	TargetID    uuid.UUID      `json:"target_id"`    // The user the notification was addressed to.
	EventType   EventType      `json:"event_type"`   // The event class that triggered the dispatch.
	Provider    ProviderFamily `json:"provider"`     // Which transport family was used.
	Status      string         `json:"status"`       // sent, skipped or failed.
	TokenCount  int            `json:"token_count"`  // Tokens handed to the provider.
	ErrorDetail string         `json:"error_detail"` // Last provider error, if any.
	SentAt      time.Time      `json:"sent_at"`
}
