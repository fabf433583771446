package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser mirrors the super_admin_users table.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'super_admin'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminUser) TableName() string { return "super_admin_users" }

// AuditLog mirrors the admin_audit_log table.
type AuditLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AdminUserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ActionType       string    `gorm:"type:varchar(100);not null;index"`
	TargetPlatform   *string   `gorm:"type:varchar(64)"`
	TargetEntityType *string   `gorm:"type:varchar(100)"`
	TargetEntityID   *string   `gorm:"type:varchar(64)"`
	ActionDetails    string    `gorm:"type:text"`
	CreatedAt        time.Time
}

func (AuditLog) TableName() string { return "admin_audit_log" }
