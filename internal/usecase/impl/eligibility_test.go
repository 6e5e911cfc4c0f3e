package impl

import (
	"testing"
	"time"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func discoverable(id uuid.UUID) *entity.EligibilityAttributes {
	return &entity.EligibilityAttributes{
		UserID:        id,
		IsVisible:     true,
		EmailVerified: true,
	}
}

func TestEligibleCandidates_Rules(t *testing.T) {
	now := time.Now().UTC()
	viewerID := uuid.New()
	pastBan := now.Add(-time.Hour)
	futureBan := now.Add(time.Hour)

	tests := []struct {
		name     string
		mutate   func(attrs *entity.EligibilityAttributes)
		eligible bool
	}{
		{
			name:     "fully discoverable",
			mutate:   func(attrs *entity.EligibilityAttributes) {},
			eligible: true,
		},
		{
			name:     "hidden profile",
			mutate:   func(attrs *entity.EligibilityAttributes) { attrs.IsVisible = false },
			eligible: false,
		},
		{
			name:     "unverified email",
			mutate:   func(attrs *entity.EligibilityAttributes) { attrs.EmailVerified = false },
			eligible: false,
		},
		{
			name:     "permanent ban",
			mutate:   func(attrs *entity.EligibilityAttributes) { attrs.BannedPermanent = true },
			eligible: false,
		},
		{
			name:     "active timed ban",
			mutate:   func(attrs *entity.EligibilityAttributes) { attrs.BannedUntil = &futureBan },
			eligible: false,
		},
		{
			name:     "expired timed ban",
			mutate:   func(attrs *entity.EligibilityAttributes) { attrs.BannedUntil = &pastBan },
			eligible: true,
		},
		{
			name: "candidate blocks viewer",
			mutate: func(attrs *entity.EligibilityAttributes) {
				attrs.BlockedUserIDs = []uuid.UUID{viewerID}
			},
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidateID := uuid.New()
			candidate := discoverable(candidateID)
			tt.mutate(candidate)

			attrs := map[uuid.UUID]*entity.EligibilityAttributes{
				candidateID: candidate,
				viewerID:    discoverable(viewerID),
			}

			eligible := eligibleCandidates(viewerID, attrs[viewerID], []uuid.UUID{candidateID}, attrs, now)
			if tt.eligible {
				assert.Equal(t, []uuid.UUID{candidateID}, eligible)
			} else {
				assert.Empty(t, eligible)
			}
		})
	}
}

func TestEligibleCandidates_ViewerBlocksCandidate(t *testing.T) {
	now := time.Now().UTC()
	viewerID := uuid.New()
	candidateID := uuid.New()

	viewer := discoverable(viewerID)
	viewer.BlockedUserIDs = []uuid.UUID{candidateID}

	attrs := map[uuid.UUID]*entity.EligibilityAttributes{
		candidateID: discoverable(candidateID),
		viewerID:    viewer,
	}

	assert.Empty(t, eligibleCandidates(viewerID, viewer, []uuid.UUID{candidateID}, attrs, now))
}

func TestEligibleCandidates_SelfExcluded(t *testing.T) {
	now := time.Now().UTC()
	viewerID := uuid.New()

	attrs := map[uuid.UUID]*entity.EligibilityAttributes{
		viewerID: discoverable(viewerID),
	}

	assert.Empty(t, eligibleCandidates(viewerID, attrs[viewerID], []uuid.UUID{viewerID}, attrs, now))
}

func TestEligibleCandidates_MissingAttributesFailClosed(t *testing.T) {
	now := time.Now().UTC()
	viewerID := uuid.New()
	unknownID := uuid.New()

	// No attribute row for the candidate: it must be dropped, not passed.
	eligible := eligibleCandidates(viewerID, discoverable(viewerID), []uuid.UUID{unknownID}, map[uuid.UUID]*entity.EligibilityAttributes{}, now)
	assert.Empty(t, eligible)
}
