package cache

import (
	"context"
	"fmt"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// dedupLedger implements repository.DedupLedger with Redis SET NX. The
// store enforces both the claim atomicity and the TTL expiry, so there is
// no sweeper and no delete path.
type dedupLedger struct {
	client *redis.Client
	ttls   map[entity.EventType]time.Duration
}

// defaultClaimTTLs backstop missing or zero config values. A claim key
// written without an expiry would permanently burn the pair.
var defaultClaimTTLs = map[entity.EventType]time.Duration{
	entity.EventProfileView: 24 * time.Hour,
	entity.EventSocialClick: 24 * time.Hour,
	entity.EventNewNeighbor: 12 * time.Hour,
}

// NewDedupLedger is the constructor for dedupLedger.
func NewDedupLedger(client *redis.Client, cfg *config.Config) repository.DedupLedger {
	ttls := make(map[entity.EventType]time.Duration, len(defaultClaimTTLs))
	for eventType, fallback := range defaultClaimTTLs {
		ttls[eventType] = fallback
	}

	if cfg.Dedup != nil {
		if cfg.Dedup.ProfileView > 0 {
			ttls[entity.EventProfileView] = cfg.Dedup.ProfileView
		}
		if cfg.Dedup.SocialClick > 0 {
			ttls[entity.EventSocialClick] = cfg.Dedup.SocialClick
		}
		if cfg.Dedup.NewNeighbor > 0 {
			ttls[entity.EventNewNeighbor] = cfg.Dedup.NewNeighbor
		}
	}

	return &dedupLedger{
		client: client,
		ttls:   ttls,
	}
}

// Claim atomically records the (target, viewer, event type) key if no live
// record exists. SET NX guarantees exactly one winner under concurrency.
func (ledger *dedupLedger) Claim(ctx context.Context, targetID, viewerID uuid.UUID, eventType entity.EventType) (bool, error) {
	ttl, ok := ledger.ttls[eventType]
	if !ok || ttl <= 0 {
		return false, errors.Errorf("no claim TTL configured for event type %q", eventType)
	}

	key := claimKey(targetID, viewerID, eventType)

	won, err := ledger.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim dedup key")
	}

	return won, nil
}

func claimKey(targetID, viewerID uuid.UUID, eventType entity.EventType) string {
	return fmt.Sprintf("dedup:%s:%s:%s", eventType, targetID, viewerID)
}
