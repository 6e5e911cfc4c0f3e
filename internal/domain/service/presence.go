package service

import "github.com/google/uuid"

// PresenceTracker answers whether a user currently holds at least one live
// realtime connection. Presence is advisory: it only annotates query
// results and never gates eligibility.
type PresenceTracker interface {
	IsOnline(userID uuid.UUID) bool
	OnlineCount() int
}
