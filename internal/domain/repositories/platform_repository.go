package repositories

import (
	"context"

	"github.com/google/uuid"
	"stayhub.admin/internal/domain/entities"
)

// PlatformRepository defines platform registry operations
type PlatformRepository interface {
	List(ctx context.Context) ([]*entities.Platform, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Platform, error)
	GetByName(ctx context.Context, name string) (*entities.Platform, error)
}

// AuditRepository appends to and reads the admin audit trail
type AuditRepository interface {
	Append(ctx context.Context, entry *entities.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]*entities.AuditEntry, error)
}
