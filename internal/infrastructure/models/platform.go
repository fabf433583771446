package models

import (
	"time"

	"github.com/google/uuid"
)

// Platform mirrors the platforms registry table. APIKeyEncrypted holds an
// AES-GCM sealed key, never the plaintext.
type Platform struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName     string    `gorm:"type:varchar(255);not null"`
	APIBaseURL      string    `gorm:"type:varchar(512);not null"`
	APIKeyEncrypted string    `gorm:"type:text;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active'"`
	LastHealthCheck *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Platform) TableName() string { return "platforms" }
