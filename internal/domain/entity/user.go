package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSummary is the public projection of a user exposed in proximity
// results. It deliberately carries no email, ban state or other sensitive
// fields.
type UserSummary struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
}

// EligibilityAttributes are the profile attributes gating whether a user may
// appear as a proximity candidate or receive proximity notifications. The
// profile collaborator owns these; this engine only reads them.
type EligibilityAttributes struct {
	UserID          uuid.UUID   `json:"user_id"`
	IsVisible       bool        `json:"is_visible"`
	EmailVerified   bool        `json:"email_verified"`
	BannedPermanent bool        `json:"banned_permanent"`
	BannedUntil     *time.Time  `json:"banned_until,omitempty"`
	BlockedUserIDs  []uuid.UUID `json:"blocked_user_ids,omitempty"`
}

// IsBanned reports whether the user is permanently banned or inside an
// active temporary ban window.
func (a *EligibilityAttributes) IsBanned(now time.Time) bool {
	if a.BannedPermanent {
		return true
	}

	return a.BannedUntil != nil && a.BannedUntil.After(now)
}

// Blocks reports whether the user has blocked the given user id.
func (a *EligibilityAttributes) Blocks(userID uuid.UUID) bool {
	for _, id := range a.BlockedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}
