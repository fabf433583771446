package models

import (
	"time"

	"github.com/google/uuid"
)

// UnifiedUser mirrors the unified_users table populated by the sync job.
type UnifiedUser struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email              string    `gorm:"type:varchar(255);not null;index"`
	PlatformID         uuid.UUID `gorm:"type:uuid;not null;index:idx_unified_users_platform_user,unique"`
	PlatformUserID     string    `gorm:"type:varchar(255);not null;index:idx_unified_users_platform_user,unique"`
	UserType           string    `gorm:"type:varchar(20);not null"`
	FullName           *string   `gorm:"type:varchar(255)"`
	Phone              *string   `gorm:"type:varchar(50)"`
	VerificationStatus *string   `gorm:"type:varchar(20)"`
	AccountStatus      string    `gorm:"type:varchar(20);not null;default:'active';index"`
	LastSyncedAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (UnifiedUser) TableName() string { return "unified_users" }
