package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationItem mirrors the verification_queue table. Documents is the
// raw JSON blob submitted by the source platform.
type VerificationItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PlatformID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	PlatformUserID   string    `gorm:"type:varchar(255);not null"`
	VerificationType string    `gorm:"type:varchar(100);not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Documents        string    `gorm:"type:text"`
	ReviewedBy       *string   `gorm:"type:varchar(64)"`
	ReviewedAt       *time.Time
	ReviewNotes      *string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (VerificationItem) TableName() string { return "verification_queue" }
