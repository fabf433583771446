package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"stayhub.admin/internal/domain/entities"
)

// VerificationRepository defines verification queue data operations
type VerificationRepository interface {
	Create(ctx context.Context, item *entities.VerificationItem) error
	// ListByStatus returns queue items newest first. An empty status or
	// "all" removes the filter.
	ListByStatus(ctx context.Context, status string) ([]*entities.VerificationItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationItem, error)
	// MarkReviewed moves an item into a terminal state. It only matches rows
	// still pending or in_review; a zero-row update reports
	// domainerrors.ErrAlreadyReviewed so double submissions surface as 409.
	MarkReviewed(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, reviewedBy uuid.UUID, notes null.String) error
	Statistics(ctx context.Context) (*entities.VerificationStatistics, error)
}
