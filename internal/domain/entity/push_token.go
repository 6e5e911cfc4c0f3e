package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderFamily identifies the push transport a token belongs to. The
// family is encoded in the token format itself, so classification is purely
// structural and never needs a lookup.
type ProviderFamily string

const (
	// ProviderExpo covers tokens issued by the Expo push service.
	ProviderExpo ProviderFamily = "expo"
	// ProviderFCM covers raw Firebase Cloud Messaging registration tokens.
	ProviderFCM ProviderFamily = "fcm"
)

// PushToken is a device push token registered by a client. A token belongs
// to exactly one user at a time; re-registering it under another user
// transfers ownership instead of duplicating it.
type PushToken struct {
	Token      string    `json:"token"`        // The provider-issued token string, unique system-wide.
	UserID     uuid.UUID `json:"user_id"`      // The user currently owning this token.
	Platform   string    `json:"platform"`     // ios, android, web or unknown.
	LastSeenAt time.Time `json:"last_seen_at"` // Refreshed on every registration.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Family classifies the token by its shape.
func (t *PushToken) Family() ProviderFamily {
	return ClassifyToken(t.Token)
}

// ClassifyToken maps a raw token string to its provider family. Expo tokens
// carry a fixed prefix; everything else is treated as an FCM registration
// token.
func ClassifyToken(token string) ProviderFamily {
	if strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[") {
		return ProviderExpo
	}

	return ProviderFCM
}

// NormalizePlatform maps a free-form client platform hint to one of the
// supported platform values.
func NormalizePlatform(hint string) string {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "ios":
		return "ios"
	case "android":
		return "android"
	case "web":
		return "web"
	default:
		return "unknown"
	}
}
