package repositories

import (
	"context"

	"github.com/google/uuid"
	"stayhub.admin/internal/domain/entities"
	"stayhub.admin/pkg/utils"
)

// UserRepository defines unified user data operations
type UserRepository interface {
	List(ctx context.Context, filter entities.UserFilter, page utils.PaginationParams) ([]*entities.User, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error
	// SetVerificationOutcome applies the user-side effect of a verification
	// review in one update.
	SetVerificationOutcome(ctx context.Context, id uuid.UUID, verificationStatus entities.VerificationStatus, accountStatus entities.AccountStatus) error
	// Upsert inserts or refreshes a synced user, matching on platform id plus
	// platform user id.
	Upsert(ctx context.Context, user *entities.User) error
}

// AdminUserRepository defines console staff account operations
type AdminUserRepository interface {
	GetActiveByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
