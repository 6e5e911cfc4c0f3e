package cache

import (
	"context"
	"testing"
	"time"

	"loocate/config"
	"loocate/internal/domain/entity"
	"loocate/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDedupLedger(t *testing.T, dedupCfg *config.DedupConfig) (*miniredis.Miniredis, repository.DedupLedger) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return server, NewDedupLedger(client, &config.Config{Dedup: dedupCfg})
}

func TestDedupLedger_Claim_SingleWinnerPerKey(t *testing.T) {
	_, ledger := createTestDedupLedger(t, &config.DedupConfig{ProfileView: time.Hour})

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	won, err := ledger.Claim(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = ledger.Claim(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.False(t, won)

	// A different viewer is a different key.
	won, err = ledger.Claim(ctx, targetID, uuid.New(), entity.EventProfileView)
	require.NoError(t, err)
	assert.True(t, won)
}

func TestDedupLedger_Claim_KeyAlwaysCarriesTTL(t *testing.T) {
	// An empty config section must not produce claims without an expiry;
	// such a key would block the pair forever.
	server, ledger := createTestDedupLedger(t, &config.DedupConfig{})

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	won, err := ledger.Claim(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	require.True(t, won)

	assert.Equal(t, 24*time.Hour, server.TTL(claimKey(targetID, viewerID, entity.EventProfileView)))
}

func TestDedupLedger_Claim_MissingConfigSectionUsesDefaults(t *testing.T) {
	server, ledger := createTestDedupLedger(t, nil)

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	won, err := ledger.Claim(ctx, targetID, viewerID, entity.EventNewNeighbor)
	require.NoError(t, err)
	require.True(t, won)

	assert.Equal(t, 12*time.Hour, server.TTL(claimKey(targetID, viewerID, entity.EventNewNeighbor)))
}

func TestDedupLedger_Claim_ConfiguredTTLWins(t *testing.T) {
	server, ledger := createTestDedupLedger(t, &config.DedupConfig{SocialClick: 30 * time.Minute})

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	won, err := ledger.Claim(ctx, targetID, viewerID, entity.EventSocialClick)
	require.NoError(t, err)
	require.True(t, won)

	assert.Equal(t, 30*time.Minute, server.TTL(claimKey(targetID, viewerID, entity.EventSocialClick)))
}

func TestDedupLedger_Claim_SucceedsAgainAfterExpiry(t *testing.T) {
	server, ledger := createTestDedupLedger(t, &config.DedupConfig{ProfileView: time.Minute})

	ctx := context.Background()
	targetID := uuid.New()
	viewerID := uuid.New()

	won, err := ledger.Claim(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	require.True(t, won)

	server.FastForward(time.Minute + time.Second)

	won, err = ledger.Claim(ctx, targetID, viewerID, entity.EventProfileView)
	require.NoError(t, err)
	assert.True(t, won)
}

func TestDedupLedger_Claim_UnknownEventType(t *testing.T) {
	_, ledger := createTestDedupLedger(t, &config.DedupConfig{})

	_, err := ledger.Claim(context.Background(), uuid.New(), uuid.New(), entity.EventType("unknown"))
	assert.Error(t, err)
}
