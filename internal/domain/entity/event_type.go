package entity

// EventType names a notification-triggering event class. The dedup ledger
// keys claims by (target, viewer, event type), and each type carries its own
// claim TTL configured on the ledger.
type EventType string

const (
	// EventProfileView is emitted when a viewer opens a target's profile.
	EventProfileView EventType = "profile_view"
	// EventSocialClick is emitted when a viewer taps a target's social link.
	EventSocialClick EventType = "social_click"
	// EventNewNeighbor is emitted when a user newly appears within another
	// user's proximity radius.
	EventNewNeighbor EventType = "new_neighbor"
)

// Valid reports whether the event type is one of the known classes.
func (e EventType) Valid() bool {
	switch e {
	case EventProfileView, EventSocialClick, EventNewNeighbor:
		return true
	default:
		return false
	}
}
