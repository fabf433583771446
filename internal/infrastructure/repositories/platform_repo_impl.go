package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/infrastructure/models"
)

// PlatformRepositoryImpl implements platform registry operations
type PlatformRepositoryImpl struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *gorm.DB) *PlatformRepositoryImpl {
	return &PlatformRepositoryImpl{db: db}
}

// List returns all registered platforms
func (r *PlatformRepositoryImpl) List(ctx context.Context) ([]*entities.Platform, error) {
	var platformModels []models.Platform
	if err := r.db.WithContext(ctx).Order("name").Find(&platformModels).Error; err != nil {
		return nil, err
	}

	platforms := make([]*entities.Platform, 0, len(platformModels))
	for i := range platformModels {
		platforms = append(platforms, platformToEntity(&platformModels[i]))
	}
	return platforms, nil
}

// GetByID gets a platform by ID
func (r *PlatformRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Platform, error) {
	var m models.Platform
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return platformToEntity(&m), nil
}

// GetByName gets a platform by its unique name
func (r *PlatformRepositoryImpl) GetByName(ctx context.Context, name string) (*entities.Platform, error) {
	var m models.Platform
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return platformToEntity(&m), nil
}

func platformToEntity(m *models.Platform) *entities.Platform {
	return &entities.Platform{
		ID:              m.ID,
		Name:            m.Name,
		DisplayName:     m.DisplayName,
		APIBaseURL:      m.APIBaseURL,
		APIKeyEncrypted: m.APIKeyEncrypted,
		Status:          entities.PlatformStatus(m.Status),
		LastHealthCheck: null.TimeFromPtr(m.LastHealthCheck),
		CreatedAt:       m.CreatedAt,
	}
}
