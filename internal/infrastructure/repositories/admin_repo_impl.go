package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/infrastructure/models"
	"stayhub.admin/pkg/utils"
)

// AdminUserRepositoryImpl implements console staff account operations
type AdminUserRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *gorm.DB) *AdminUserRepositoryImpl {
	return &AdminUserRepositoryImpl{db: db}
}

// GetActiveByEmail gets an active admin by email. Inactive accounts are
// treated as not found.
func (r *AdminUserRepositoryImpl) GetActiveByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	var m models.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// GetByID gets an admin by ID
func (r *AdminUserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	var m models.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// TouchLastLogin stamps last_login_at
func (r *AdminUserRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func adminToEntity(m *models.AdminUser) *entities.AdminUser {
	return &entities.AdminUser{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		LastLoginAt:  null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:    m.CreatedAt,
	}
}

// AuditRepositoryImpl implements the admin audit trail
type AuditRepositoryImpl struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepositoryImpl {
	return &AuditRepositoryImpl{db: db}
}

// Append writes one audit entry
func (r *AuditRepositoryImpl) Append(ctx context.Context, entry *entities.AuditEntry) error {
	m := &models.AuditLog{
		ID:               entry.ID,
		AdminUserID:      entry.AdminUserID,
		ActionType:       entry.ActionType,
		TargetPlatform:   entry.TargetPlatform.Ptr(),
		TargetEntityType: entry.TargetEntityType.Ptr(),
		TargetEntityID:   entry.TargetEntityID.Ptr(),
		ActionDetails:    string(entry.Details),
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.ActionDetails == "" {
		m.ActionDetails = "{}"
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}

// ListRecent returns the newest audit entries, most recent first.
func (r *AuditRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*entities.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var logModels []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.AuditEntry, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		entries = append(entries, &entities.AuditEntry{
			ID:               m.ID,
			AdminUserID:      m.AdminUserID,
			ActionType:       m.ActionType,
			TargetPlatform:   null.StringFromPtr(m.TargetPlatform),
			TargetEntityType: null.StringFromPtr(m.TargetEntityType),
			TargetEntityID:   null.StringFromPtr(m.TargetEntityID),
			Details:          []byte(m.ActionDetails),
			CreatedAt:        m.CreatedAt,
		})
	}
	return entries, nil
}
