package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel mirrors the 'push_tokens' table. The token string itself is
// unique across all users; re-registering a token under a new account moves
// ownership instead of creating a duplicate row.
type PushTokenModel struct {
	Token      string    `gorm:"type:varchar(512);primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform   string    `gorm:"type:varchar(50);not null;default:'unknown'"`
	LastSeenAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}
