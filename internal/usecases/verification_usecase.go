package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/domain/repositories"
	"stayhub.admin/internal/infrastructure/platforms"
	"stayhub.admin/pkg/crypto"
	"stayhub.admin/pkg/logger"
	"stayhub.admin/pkg/metrics"
	"stayhub.admin/pkg/redis"
)

const (
	statsCacheKey = "verification:stats"
	statsCacheTTL = 30 * time.Second
)

// VerificationUsecase handles the verification review workflow
type VerificationUsecase struct {
	verifRepo    repositories.VerificationRepository
	userRepo     repositories.UserRepository
	platformRepo repositories.PlatformRepository
	auditRepo    repositories.AuditRepository
	secretbox    *crypto.Secretbox

	// newClient is replaceable in tests.
	newClient func(name, baseURL, apiKey string) *platforms.Client
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verifRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	platformRepo repositories.PlatformRepository,
	auditRepo repositories.AuditRepository,
	secretbox *crypto.Secretbox,
) *VerificationUsecase {
	return &VerificationUsecase{
		verifRepo:    verifRepo,
		userRepo:     userRepo,
		platformRepo: platformRepo,
		auditRepo:    auditRepo,
		secretbox:    secretbox,
		newClient:    platforms.NewClient,
	}
}

// Queue returns verification items filtered by status, newest first.
// "all" and the empty string return every item.
func (u *VerificationUsecase) Queue(ctx context.Context, status string) ([]*entities.VerificationItem, error) {
	switch status {
	case "", "all",
		string(entities.VerificationPending),
		string(entities.VerificationInReview),
		string(entities.VerificationApproved),
		string(entities.VerificationRejected):
	default:
		return nil, domainerrors.ErrInvalidInput
	}
	return u.verifRepo.ListByStatus(ctx, status)
}

// Details returns a verification item joined with its unified user and
// source platform. Missing user or platform rows do not fail the screen.
func (u *VerificationUsecase) Details(ctx context.Context, id uuid.UUID) (*entities.VerificationDetail, error) {
	item, err := u.verifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &entities.VerificationDetail{VerificationItem: *item}

	if user, err := u.userRepo.GetByID(ctx, item.UserID); err == nil {
		detail.User = user
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if platform, err := u.platformRepo.GetByID(ctx, item.PlatformID); err == nil {
		detail.Platform = platform
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	return detail, nil
}

// Approve resolves a verification item as approved. The unified user is
// marked approved and active, the decision is pushed back to the
// originating platform, and the statistics cache is dropped.
func (u *VerificationUsecase) Approve(ctx context.Context, adminID, id uuid.UUID, input *entities.ApproveVerificationInput) (*entities.VerificationItem, error) {
	return u.review(ctx, adminID, id, entities.VerificationApproved, null.StringFrom(input.Notes), null.String{})
}

// Reject resolves a verification item as rejected. The unified user is
// suspended until they resubmit on their home platform.
func (u *VerificationUsecase) Reject(ctx context.Context, adminID, id uuid.UUID, input *entities.RejectVerificationInput) (*entities.VerificationItem, error) {
	if input.Reason == "" {
		return nil, domainerrors.ErrReasonRequired
	}
	return u.review(ctx, adminID, id, entities.VerificationRejected, input.Notes, null.StringFrom(input.Reason))
}

func (u *VerificationUsecase) review(ctx context.Context, adminID, id uuid.UUID, outcome entities.VerificationStatus, notes, reason null.String) (*entities.VerificationItem, error) {
	item, err := u.verifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.Status.CanTransitionTo(outcome) {
		return nil, domainerrors.ErrAlreadyReviewed
	}

	if err := u.verifRepo.MarkReviewed(ctx, id, outcome, adminID, notes); err != nil {
		return nil, err
	}

	accountStatus := entities.AccountActive
	if outcome == entities.VerificationRejected {
		accountStatus = entities.AccountSuspended
	}
	if err := u.userRepo.SetVerificationOutcome(ctx, item.UserID, outcome, accountStatus); err != nil {
		// The review itself is committed; the user row catches up on the
		// next sync pass.
		logger.Error(ctx, "failed to apply verification outcome to user",
			zap.String("user_id", item.UserID.String()), zap.Error(err))
	}

	u.propagate(ctx, adminID, item, outcome, notes, reason)
	u.appendAudit(ctx, adminID, item, outcome, notes, reason)
	u.dropStatsCache(ctx)
	metrics.ReviewsTotal.WithLabelValues(string(outcome)).Inc()

	return u.verifRepo.GetByID(ctx, id)
}

// propagate pushes the review decision back to the platform the item came
// from so its own user record reflects the outcome.
func (u *VerificationUsecase) propagate(ctx context.Context, adminID uuid.UUID, item *entities.VerificationItem, outcome entities.VerificationStatus, notes, reason null.String) {
	platform, err := u.platformRepo.GetByID(ctx, item.PlatformID)
	if err != nil {
		logger.Warn(ctx, "platform lookup failed, decision not propagated",
			zap.String("platform_id", item.PlatformID.String()), zap.Error(err))
		return
	}
	if platform.Status != entities.PlatformActive {
		logger.Warn(ctx, "platform not active, decision not propagated",
			zap.String("platform", platform.Name), zap.String("status", string(platform.Status)))
		return
	}

	apiKey, err := u.secretbox.Decrypt(platform.APIKeyEncrypted)
	if err != nil {
		logger.Error(ctx, "failed to decrypt platform api key",
			zap.String("platform", platform.Name), zap.Error(err))
		return
	}
	client := u.newClient(platform.Name, platform.APIBaseURL, apiKey)

	if outcome == entities.VerificationApproved {
		err = client.ApproveVerification(ctx, item.PlatformUserID, notes.String, adminID.String())
	} else {
		err = client.RejectVerification(ctx, item.PlatformUserID, reason.String, notes.String, adminID.String())
	}
	if err != nil {
		logger.Error(ctx, "failed to propagate verification decision",
			zap.String("platform", platform.Name),
			zap.String("platform_user_id", item.PlatformUserID), zap.Error(err))
	}
}

func (u *VerificationUsecase) appendAudit(ctx context.Context, adminID uuid.UUID, item *entities.VerificationItem, outcome entities.VerificationStatus, notes, reason null.String) {
	action := entities.ActionVerificationApproved
	if outcome == entities.VerificationRejected {
		action = entities.ActionVerificationRejected
	}
	details, _ := json.Marshal(map[string]interface{}{
		"verification_type": item.VerificationType,
		"notes":             notes.Ptr(),
		"reason":            reason.Ptr(),
	})
	entry := &entities.AuditEntry{
		AdminUserID:      adminID,
		ActionType:       action,
		TargetEntityType: null.StringFrom("verification_item"),
		TargetEntityID:   null.StringFrom(item.ID.String()),
		Details:          details,
	}
	if err := u.auditRepo.Append(ctx, entry); err != nil {
		logger.Error(ctx, "failed to append audit entry",
			zap.String("action", action), zap.String("target_id", item.ID.String()), zap.Error(err))
	}
}

// Statistics returns aggregate queue counts, served from a short-lived
// Redis cache when one is configured.
func (u *VerificationUsecase) Statistics(ctx context.Context) (*entities.VerificationStatistics, error) {
	if redis.GetClient() != nil {
		var cached entities.VerificationStatistics
		err := redis.GetJSON(ctx, statsCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logger.Warn(ctx, "statistics cache read failed", zap.Error(err))
		}
	}

	stats, err := u.verifRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	if redis.GetClient() != nil {
		if err := redis.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			logger.Warn(ctx, "statistics cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (u *VerificationUsecase) dropStatsCache(ctx context.Context) {
	if redis.GetClient() == nil {
		return
	}
	if err := redis.Del(ctx, statsCacheKey); err != nil {
		logger.Warn(ctx, "statistics cache invalidation failed", zap.Error(err))
	}
}
