package impl

import (
	"time"

	"loocate/internal/domain/entity"

	"github.com/google/uuid"
)

// eligibleCandidates filters candidate user ids down to those the viewer may
// discover. The rules fail closed: a candidate with no attribute row is
// dropped, never passed through.
//
// A candidate survives when all of the following hold:
//   - it is not the viewer themself
//   - its attributes are present
//   - the profile is visible and the email verified
//   - no active ban, permanent or timed
//   - neither side blocks the other
func eligibleCandidates(
	viewerID uuid.UUID,
	viewerAttrs *entity.EligibilityAttributes,
	candidateIDs []uuid.UUID,
	attrs map[uuid.UUID]*entity.EligibilityAttributes,
	now time.Time,
) []uuid.UUID {
	eligible := make([]uuid.UUID, 0, len(candidateIDs))

	for _, candidateID := range candidateIDs {
		if candidateID == viewerID {
			continue
		}

		candidate, ok := attrs[candidateID]
		if !ok || candidate == nil {
			continue
		}
		if !candidate.IsVisible || !candidate.EmailVerified {
			continue
		}
		if candidate.IsBanned(now) {
			continue
		}
		if candidate.Blocks(viewerID) {
			continue
		}
		if viewerAttrs != nil && viewerAttrs.Blocks(candidateID) {
			continue
		}

		eligible = append(eligible, candidateID)
	}

	return eligible
}
