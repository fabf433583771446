package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"stayhub.admin/internal/domain/entities"
	"stayhub.admin/internal/domain/repositories"
	"stayhub.admin/internal/infrastructure/platforms"
	"stayhub.admin/pkg/crypto"
	"stayhub.admin/pkg/logger"
	"stayhub.admin/pkg/metrics"

	"github.com/volatiletech/null/v8"
)

const syncPageSize = 100

// PlatformSyncJob periodically pulls users from every registered platform
// into the unified_users table.
type PlatformSyncJob struct {
	platformRepo repositories.PlatformRepository
	userRepo     repositories.UserRepository
	secretbox    *crypto.Secretbox
	interval     time.Duration
	stop         chan struct{}

	// newClient is replaceable in tests.
	newClient func(name, baseURL, apiKey string) *platforms.Client
}

func NewPlatformSyncJob(platformRepo repositories.PlatformRepository, userRepo repositories.UserRepository, secretbox *crypto.Secretbox, interval time.Duration) *PlatformSyncJob {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &PlatformSyncJob{
		platformRepo: platformRepo,
		userRepo:     userRepo,
		secretbox:    secretbox,
		interval:     interval,
		stop:         make(chan struct{}),
		newClient:    platforms.NewClient,
	}
}

// Start runs the sync loop until the context is cancelled or Stop is called.
func (j *PlatformSyncJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting platform sync job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "platform sync job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "platform sync job stopped")
			return
		case <-ticker.C:
			if err := j.SyncOnce(ctx); err != nil {
				logger.Error(ctx, "platform sync failed", zap.Error(err))
			}
		}
	}
}

// Stop signals the loop to exit.
func (j *PlatformSyncJob) Stop() {
	close(j.stop)
}

// SyncOnce pulls all users from every active platform. A failing platform
// is logged and skipped so one outage does not starve the others.
func (j *PlatformSyncJob) SyncOnce(ctx context.Context) error {
	platformList, err := j.platformRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, p := range platformList {
		if p.Status != entities.PlatformActive {
			continue
		}
		if err := j.syncPlatform(ctx, p); err != nil {
			metrics.SyncRunsTotal.WithLabelValues("error").Inc()
			logger.Error(ctx, "platform sync failed",
				zap.String("platform", p.Name), zap.Error(err))
			continue
		}
		metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
	}
	return nil
}

func (j *PlatformSyncJob) syncPlatform(ctx context.Context, p *entities.Platform) error {
	apiKey, err := j.secretbox.Decrypt(p.APIKeyEncrypted)
	if err != nil {
		return err
	}
	client := j.newClient(p.Name, p.APIBaseURL, apiKey)

	synced := 0
	for page := 1; ; page++ {
		users, totalPages, err := client.FetchUsers(ctx, page, syncPageSize)
		if err != nil {
			return err
		}

		for _, pu := range users {
			user := &entities.User{
				Email:          pu.Email,
				PlatformID:     p.ID,
				PlatformUserID: pu.ID,
				UserType:       entities.UserType(pu.UserType),
				AccountStatus:  entities.AccountActive,
			}
			if pu.FullName != "" {
				user.FullName = null.StringFrom(pu.FullName)
			}
			if pu.Phone != "" {
				user.Phone = null.StringFrom(pu.Phone)
			}
			if pu.VerificationStatus != "" {
				user.VerificationStatus = null.StringFrom(pu.VerificationStatus)
			}
			if err := j.userRepo.Upsert(ctx, user); err != nil {
				logger.Error(ctx, "failed to upsert synced user",
					zap.String("platform", p.Name),
					zap.String("platform_user_id", pu.ID),
					zap.Error(err))
				continue
			}
			synced++
		}

		if page >= totalPages || len(users) == 0 {
			break
		}
	}

	metrics.SyncUsersUpserted.Add(float64(synced))
	logger.Info(ctx, "platform synced",
		zap.String("platform", p.Name), zap.Int("users", synced))
	return nil
}
