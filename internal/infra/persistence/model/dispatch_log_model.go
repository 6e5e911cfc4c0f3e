package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchLogModel is the GORM-specific struct for the 'dispatch_logs' table.
// It records one row per provider family per notification dispatch.
type DispatchLogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TargetID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType   string    `gorm:"type:varchar(50);not null"`
	Provider    string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:text;not null;default:'sent'"`
	TokenCount  int       `gorm:"not null;default:0"`
	ErrorDetail string    `gorm:"type:text"`
	SentAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DispatchLogModel) TableName() string {
	return "dispatch_logs"
}
