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

// UserRepositoryImpl implements unified user data operations
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new unified user repository
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// List returns a page of users matching every supplied filter, newest first,
// together with the unpaginated total.
func (r *UserRepositoryImpl) List(ctx context.Context, filter entities.UserFilter, page utils.PaginationParams) ([]*entities.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UnifiedUser{})

	if filter.Platform != "" {
		query = query.Where("platform_id = ?", filter.Platform)
	}
	if filter.UserType != "" {
		query = query.Where("user_type = ?", filter.UserType)
	}
	if filter.AccountStatus != "" {
		query = query.Where("account_status = ?", filter.AccountStatus)
	}
	if filter.Search != "" {
		// LOWER/LIKE instead of ILIKE so sqlite-backed tests behave the same
		// as postgres.
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(email) LIKE LOWER(?) OR LOWER(full_name) LIKE LOWER(?)", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []models.UnifiedUser
	err := query.Order("created_at DESC").
		Offset(page.CalculateOffset()).
		Limit(page.Limit).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, total, nil
}

// GetByID gets a unified user by ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.UnifiedUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// UpdateAccountStatus updates a user's account status
func (r *UserRepositoryImpl) UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	result := r.db.WithContext(ctx).Model(&models.UnifiedUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"account_status": string(status),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetVerificationOutcome applies the user-side effect of a review decision.
func (r *UserRepositoryImpl) SetVerificationOutcome(ctx context.Context, id uuid.UUID, verificationStatus entities.VerificationStatus, accountStatus entities.AccountStatus) error {
	result := r.db.WithContext(ctx).Model(&models.UnifiedUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": string(verificationStatus),
			"account_status":      string(accountStatus),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Upsert inserts a synced user or refreshes the existing row matched on
// (platform_id, platform_user_id).
func (r *UserRepositoryImpl) Upsert(ctx context.Context, user *entities.User) error {
	var existing models.UnifiedUser
	err := r.db.WithContext(ctx).
		Where("platform_id = ? AND platform_user_id = ?", user.PlatformID, user.PlatformUserID).
		First(&existing).Error

	now := time.Now()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m := userToModel(user)
		if m.ID == uuid.Nil {
			m.ID = utils.GenerateUUIDv7()
		}
		m.LastSyncedAt = &now
		if createErr := r.db.WithContext(ctx).Create(m).Error; createErr != nil {
			return createErr
		}
		user.ID = m.ID
		return nil
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"email":          user.Email,
		"user_type":      string(user.UserType),
		"full_name":      user.FullName.Ptr(),
		"phone":          user.Phone.Ptr(),
		"last_synced_at": now,
		"updated_at":     now,
	}
	if user.VerificationStatus.Valid {
		updates["verification_status"] = user.VerificationStatus.String
	}

	if err := r.db.WithContext(ctx).Model(&models.UnifiedUser{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return err
	}
	user.ID = existing.ID
	return nil
}

func userToModel(u *entities.User) *models.UnifiedUser {
	return &models.UnifiedUser{
		ID:                 u.ID,
		Email:              u.Email,
		PlatformID:         u.PlatformID,
		PlatformUserID:     u.PlatformUserID,
		UserType:           string(u.UserType),
		FullName:           u.FullName.Ptr(),
		Phone:              u.Phone.Ptr(),
		VerificationStatus: u.VerificationStatus.Ptr(),
		AccountStatus:      string(u.AccountStatus),
		LastSyncedAt:       u.LastSyncedAt.Ptr(),
		CreatedAt:          u.CreatedAt,
	}
}

func userToEntity(m *models.UnifiedUser) *entities.User {
	return &entities.User{
		ID:                 m.ID,
		Email:              m.Email,
		PlatformID:         m.PlatformID,
		PlatformUserID:     m.PlatformUserID,
		UserType:           entities.UserType(m.UserType),
		FullName:           null.StringFromPtr(m.FullName),
		Phone:              null.StringFromPtr(m.Phone),
		VerificationStatus: null.StringFromPtr(m.VerificationStatus),
		AccountStatus:      entities.AccountStatus(m.AccountStatus),
		LastSyncedAt:       null.TimeFromPtr(m.LastSyncedAt),
		CreatedAt:          m.CreatedAt,
	}
}
