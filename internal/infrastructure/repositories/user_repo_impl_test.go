package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/pkg/utils"
)

func seedUser(t *testing.T, db *gorm.DB, repo *UserRepositoryImpl, email, fullName string, userType entities.UserType, status entities.AccountStatus, platformID uuid.UUID, platformUserID string) *entities.User {
	t.Helper()
	u := &entities.User{
		Email:          email,
		PlatformID:     platformID,
		PlatformUserID: platformUserID,
		UserType:       userType,
		FullName:       null.StringFrom(fullName),
		AccountStatus:  status,
	}
	require.NoError(t, repo.Upsert(context.Background(), u))
	return u
}

func TestUserRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hostPlatform := uuid.New()
	agentPlatform := uuid.New()

	seedUser(t, db, repo, "alice@host.io", "Alice Host", entities.UserTypeHost, entities.AccountActive, hostPlatform, "h-1")
	seedUser(t, db, repo, "bob@agent.io", "Bob Agent", entities.UserTypeAgent, entities.AccountSuspended, agentPlatform, "a-1")
	seedUser(t, db, repo, "carol@host.io", "Carol ALICEsson", entities.UserTypeGuest, entities.AccountActive, hostPlatform, "h-2")

	// No filters lists everyone.
	users, total, err := repo.List(ctx, entities.UserFilter{}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 3)

	// Exact match filters.
	users, total, err = repo.List(ctx, entities.UserFilter{UserType: "host"}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@host.io", users[0].Email)

	users, _, err = repo.List(ctx, entities.UserFilter{AccountStatus: "suspended"}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@agent.io", users[0].Email)

	users, _, err = repo.List(ctx, entities.UserFilter{Platform: agentPlatform.String()}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@agent.io", users[0].Email)

	// Search is case-insensitive over email and full name.
	users, _, err = repo.List(ctx, entities.UserFilter{Search: "ALICE"}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	// Combined filters must all match.
	users, _, err = repo.List(ctx, entities.UserFilter{Search: "alice", UserType: "guest"}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol@host.io", users[0].Email)
}

func TestUserRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	platformID := uuid.New()
	for i := 0; i < 5; i++ {
		u := seedUser(t, db, repo, "u@x.io", "User", entities.UserTypeHost, entities.AccountActive, platformID, uuid.NewString())
		// Spread created_at so ordering is deterministic.
		require.NoError(t, db.Exec("UPDATE unified_users SET created_at = ? WHERE id = ?",
			time.Now().Add(time.Duration(-i)*time.Minute), u.ID).Error)
	}

	page1, total, err := repo.List(ctx, entities.UserFilter{}, utils.GetPaginationParams(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)

	page3, _, err := repo.List(ctx, entities.UserFilter{}, utils.GetPaginationParams(3, 2))
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Pages are disjoint.
	seen := map[uuid.UUID]bool{}
	for _, p := range [][]*entities.User{page1, page3} {
		for _, u := range p {
			assert.False(t, seen[u.ID], "user %s appeared twice", u.ID)
			seen[u.ID] = true
		}
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, repo, "dan@host.io", "Dan", entities.UserTypeHost, entities.AccountActive, uuid.New(), "h-9")

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "dan@host.io", got.Email)
	assert.True(t, got.LastSyncedAt.Valid, "upsert must stamp last_synced_at")

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_UpdateAccountStatus(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, repo, "eve@host.io", "Eve", entities.UserTypeHost, entities.AccountActive, uuid.New(), "h-10")

	require.NoError(t, repo.UpdateAccountStatus(ctx, u.ID, entities.AccountBanned))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AccountBanned, got.AccountStatus)

	assert.ErrorIs(t, repo.UpdateAccountStatus(ctx, uuid.New(), entities.AccountActive), domainerrors.ErrNotFound)
}

func TestUserRepository_SetVerificationOutcome(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, repo, "frank@agent.io", "Frank", entities.UserTypeAgent, entities.AccountSuspended, uuid.New(), "a-2")

	require.NoError(t, repo.SetVerificationOutcome(ctx, u.ID, entities.VerificationApproved, entities.AccountActive))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", got.VerificationStatus.String)
	assert.Equal(t, entities.AccountActive, got.AccountStatus)

	assert.ErrorIs(t,
		repo.SetVerificationOutcome(ctx, uuid.New(), entities.VerificationRejected, entities.AccountSuspended),
		domainerrors.ErrNotFound)
}

func TestUserRepository_UpsertRefreshesExisting(t *testing.T) {
	db := newTestDB(t)
	createUnifiedUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	platformID := uuid.New()
	first := seedUser(t, db, repo, "old@host.io", "Old Name", entities.UserTypeHost, entities.AccountActive, platformID, "h-42")

	again := &entities.User{
		Email:          "new@host.io",
		PlatformID:     platformID,
		PlatformUserID: "h-42",
		UserType:       entities.UserTypeHost,
		FullName:       null.StringFrom("New Name"),
		AccountStatus:  entities.AccountActive,
	}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, first.ID, again.ID, "upsert must reuse the existing row")

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@host.io", got.Email)
	assert.Equal(t, "New Name", got.FullName.String)
}
