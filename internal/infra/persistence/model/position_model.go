package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPositionModel mirrors the 'user_positions' table. One row per user;
// position updates overwrite the previous row.
type UserPositionModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	UpdatedAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPositionModel) TableName() string {
	return "user_positions"
}
