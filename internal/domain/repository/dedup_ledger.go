package repository

import (
	"context"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// DedupLedger is the time-bounded idempotency store behind notification
// deduplication. The store itself enforces both the uniqueness of the
// (target, viewer, event type) key and the automatic expiry of records;
// application code never deletes them.
type DedupLedger interface {
	// Claim atomically records the key if no live record exists. It returns
	// true when this caller won the claim and should notify; false when the
	// pair was already notified inside the TTL window. Under concurrent
	// claims for the same key exactly one caller observes true.
	Claim(ctx context.Context, targetID, viewerID uuid.UUID, eventType entity.EventType) (bool, error)
}
