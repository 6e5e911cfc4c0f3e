// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Coordinate bounds for a valid WGS-84 point.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// UserPosition is a user's last known geographic position. There is at most
// one per user; every update overwrites the previous one.
type UserPosition struct {
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user this position belongs to.
	Longitude float64   `json:"longitude"`  // WGS-84 longitude in degrees.
	Latitude  float64   `json:"latitude"`   // WGS-84 latitude in degrees.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last position write.
}

// Point returns the position as an orb point (lon, lat order).
func (p *UserPosition) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// IsFresh reports whether the position was written within the given window.
func (p *UserPosition) IsFresh(now time.Time, window time.Duration) bool {
	return !p.UpdatedAt.Before(now.Add(-window))
}

// ValidCoordinate reports whether lon/lat form a valid WGS-84 point.
func ValidCoordinate(lon, lat float64) bool {
	return lon >= MinLongitude && lon <= MaxLongitude &&
		lat >= MinLatitude && lat <= MaxLatitude
}

// NearbyUser is a proximity query result: a public user summary plus the
// distance from the query point.
type NearbyUser struct {
	User           UserSummary  `json:"user"`
	Position       UserPosition `json:"position"`
	DistanceMeters float64      `json:"distance_meters"`
	IsOnline       bool         `json:"is_online"`
}
