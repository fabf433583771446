package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/domain/repositories"
	"stayhub.admin/pkg/logger"
	"stayhub.admin/pkg/utils"
)

// UserUsecase handles unified user moderation
type UserUsecase struct {
	userRepo  repositories.UserRepository
	auditRepo repositories.AuditRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, auditRepo repositories.AuditRepository) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// List returns a filtered, paginated page of unified users
func (u *UserUsecase) List(ctx context.Context, filter entities.UserFilter, page utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error) {
	users, total, err := u.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, page.Page, page.Limit), nil
}

// Get returns a single unified user by id
func (u *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateStatus changes a user's moderation status. Suspending or banning
// requires a reason, which lands in the audit trail alongside the change.
func (u *UserUsecase) UpdateStatus(ctx context.Context, adminID, id uuid.UUID, input *entities.UpdateUserStatusInput) (*entities.User, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.Status != entities.AccountActive && !input.Reason.Valid {
		return nil, domainerrors.ErrReasonRequired
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := user.AccountStatus
	if err := u.userRepo.UpdateAccountStatus(ctx, id, input.Status); err != nil {
		return nil, err
	}
	user.AccountStatus = input.Status

	u.appendAudit(ctx, adminID, id, previous, input)

	return user, nil
}

func (u *UserUsecase) appendAudit(ctx context.Context, adminID, userID uuid.UUID, previous entities.AccountStatus, input *entities.UpdateUserStatusInput) {
	details, _ := json.Marshal(map[string]interface{}{
		"previous_status": previous,
		"new_status":      input.Status,
		"reason":          input.Reason.Ptr(),
	})
	entry := &entities.AuditEntry{
		AdminUserID:      adminID,
		ActionType:       entities.ActionUserStatusUpdate,
		TargetEntityType: null.StringFrom("unified_user"),
		TargetEntityID:   null.StringFrom(userID.String()),
		Details:          details,
	}
	if err := u.auditRepo.Append(ctx, entry); err != nil {
		// The status change already committed; the trail is best effort.
		logger.Error(ctx, "failed to append audit entry",
			zap.String("action", entry.ActionType), zap.String("target_id", userID.String()), zap.Error(err))
	}
}
