package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Username      string    `gorm:"type:varchar(100);unique;not null"`
	DisplayName   string    `gorm:"type:varchar(100)"`
	Bio           string    `gorm:"type:text"`
	AvatarURL     string    `gorm:"type:text"`
	IsVisible     bool      `gorm:"not null;default:true"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`

	Ban        *UserBanModel      `gorm:"foreignKey:UserID"`
	PushTokens []PushTokenModel   `gorm:"foreignKey:UserID"`
	Position   *UserPositionModel `gorm:"foreignKey:UserID"`
	Blocks     []UserBlockModel   `gorm:"foreignKey:BlockerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserBanModel mirrors the 'user_bans' table. A row with a NULL ExpiresAt is
// a permanent ban; otherwise the ban lapses once ExpiresAt passes.
type UserBanModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Reason    string    `gorm:"type:text"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBanModel) TableName() string {
	return "user_bans"
}

// UserBlockModel mirrors the 'user_blocks' table. BlockerID hides BlockedID
// from their discovery results and vice versa.
type UserBlockModel struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primary_key"`
	BlockedID uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBlockModel) TableName() string {
	return "user_blocks"
}
