package repositories

import (
	"context"
	"encoding/json"
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

// VerificationRepositoryImpl implements verification queue operations
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepositoryImpl {
	return &VerificationRepositoryImpl{db: db}
}

// Create inserts a new queue item
func (r *VerificationRepositoryImpl) Create(ctx context.Context, item *entities.VerificationItem) error {
	m := verificationToModel(item)
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

// ListByStatus returns queue items newest first. "all" or empty removes the
// status filter.
func (r *VerificationRepositoryImpl) ListByStatus(ctx context.Context, status string) ([]*entities.VerificationItem, error) {
	query := r.db.WithContext(ctx).Model(&models.VerificationItem{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var itemModels []models.VerificationItem
	if err := query.Order("created_at DESC").Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.VerificationItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, verificationToEntity(&itemModels[i]))
	}
	return items, nil
}

// GetByID gets a queue item by ID
func (r *VerificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationItem, error) {
	var m models.VerificationItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationToEntity(&m), nil
}

// MarkReviewed moves an item into a terminal state. The WHERE clause only
// matches rows that are still reviewable, so a second submission updates
// zero rows and reports ErrAlreadyReviewed.
func (r *VerificationRepositoryImpl) MarkReviewed(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, reviewedBy uuid.UUID, notes null.String) error {
	now := time.Now()
	reviewer := reviewedBy.String()

	result := r.db.WithContext(ctx).Model(&models.VerificationItem{}).
		Where("id = ? AND status IN ?", id, []string{
			string(entities.VerificationPending),
			string(entities.VerificationInReview),
		}).
		Updates(map[string]interface{}{
			"status":       string(status),
			"reviewed_by":  reviewer,
			"reviewed_at":  now,
			"review_notes": notes.Ptr(),
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from one already resolved.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.VerificationItem{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrAlreadyReviewed
	}
	return nil
}

// Statistics recomputes aggregate queue counts by status.
func (r *VerificationRepositoryImpl) Statistics(ctx context.Context) (*entities.VerificationStatistics, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.VerificationItem{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &entities.VerificationStatistics{}
	for _, rw := range rows {
		stats.Total += rw.Count
		switch entities.VerificationStatus(rw.Status) {
		case entities.VerificationPending:
			stats.Pending = rw.Count
		case entities.VerificationInReview:
			stats.InReview = rw.Count
		case entities.VerificationApproved:
			stats.Approved = rw.Count
		case entities.VerificationRejected:
			stats.Rejected = rw.Count
		}
	}
	return stats, nil
}

func verificationToModel(it *entities.VerificationItem) *models.VerificationItem {
	docs := "{}"
	if len(it.Documents) > 0 {
		docs = string(it.Documents)
	}
	return &models.VerificationItem{
		ID:               it.ID,
		PlatformID:       it.PlatformID,
		UserID:           it.UserID,
		PlatformUserID:   it.PlatformUserID,
		VerificationType: it.VerificationType,
		Status:           string(it.Status),
		Documents:        docs,
		ReviewedBy:       it.ReviewedBy.Ptr(),
		ReviewedAt:       it.ReviewedAt.Ptr(),
		ReviewNotes:      it.ReviewNotes.Ptr(),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func verificationToEntity(m *models.VerificationItem) *entities.VerificationItem {
	docs := json.RawMessage(m.Documents)
	if m.Documents == "" {
		docs = json.RawMessage("{}")
	}
	return &entities.VerificationItem{
		ID:               m.ID,
		PlatformID:       m.PlatformID,
		UserID:           m.UserID,
		PlatformUserID:   m.PlatformUserID,
		VerificationType: m.VerificationType,
		Status:           entities.VerificationStatus(m.Status),
		Documents:        docs,
		ReviewedBy:       null.StringFromPtr(m.ReviewedBy),
		ReviewedAt:       null.TimeFromPtr(m.ReviewedAt),
		ReviewNotes:      null.StringFromPtr(m.ReviewNotes),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
