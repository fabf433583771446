package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/pkg/logger"
	"stayhub.admin/pkg/utils"
)

func newUserFixture(t *testing.T) (*UserUsecase, *userRepoMock, *auditRepoMock) {
	t.Helper()
	logger.Init("production")
	userRepo := newUserRepoMock()
	auditRepo := &auditRepoMock{}
	return NewUserUsecase(userRepo, auditRepo), userRepo, auditRepo
}

func TestListUsers(t *testing.T) {
	uc, repo, _ := newUserFixture(t)
	repo.add(&entities.User{Email: "a@x.io", AccountStatus: entities.AccountActive})
	repo.add(&entities.User{Email: "b@x.io", AccountStatus: entities.AccountActive})

	users, meta, err := uc.List(context.Background(), entities.UserFilter{}, utils.GetPaginationParams(1, 50))
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestUpdateStatus_Suspend(t *testing.T) {
	uc, repo, audit := newUserFixture(t)
	adminID := uuid.New()
	user := repo.add(&entities.User{Email: "a@x.io", AccountStatus: entities.AccountActive})

	updated, err := uc.UpdateStatus(context.Background(), adminID, user.ID, &entities.UpdateUserStatusInput{
		Status: entities.AccountSuspended,
		Reason: null.StringFrom("chargeback fraud"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AccountSuspended, updated.AccountStatus)
	assert.Equal(t, entities.AccountSuspended, repo.statusUpdates[user.ID])

	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, entities.ActionUserStatusUpdate, entry.ActionType)
	assert.Equal(t, adminID, entry.AdminUserID)
	assert.Equal(t, user.ID.String(), entry.TargetEntityID.String)

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	assert.Equal(t, "active", details["previous_status"])
	assert.Equal(t, "suspended", details["new_status"])
	assert.Equal(t, "chargeback fraud", details["reason"])
}

func TestUpdateStatus_ReasonRequiredForSuspension(t *testing.T) {
	uc, repo, audit := newUserFixture(t)
	user := repo.add(&entities.User{Email: "a@x.io", AccountStatus: entities.AccountActive})

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), user.ID, &entities.UpdateUserStatusInput{
		Status: entities.AccountBanned,
	})
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)
	assert.Empty(t, audit.entries)
	assert.Empty(t, repo.statusUpdates)
}

func TestUpdateStatus_ReactivateNeedsNoReason(t *testing.T) {
	uc, repo, _ := newUserFixture(t)
	user := repo.add(&entities.User{Email: "a@x.io", AccountStatus: entities.AccountSuspended})

	updated, err := uc.UpdateStatus(context.Background(), uuid.New(), user.ID, &entities.UpdateUserStatusInput{
		Status: entities.AccountActive,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AccountActive, updated.AccountStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	uc, repo, _ := newUserFixture(t)
	user := repo.add(&entities.User{Email: "a@x.io"})

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), user.ID, &entities.UpdateUserStatusInput{
		Status: entities.AccountStatus("frozen"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUpdateStatus_UnknownUser(t *testing.T) {
	uc, _, _ := newUserFixture(t)

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), &entities.UpdateUserStatusInput{
		Status: entities.AccountActive,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUpdateStatus_AuditFailureIsNotFatal(t *testing.T) {
	uc, repo, audit := newUserFixture(t)
	audit.appendErr = assert.AnError
	user := repo.add(&entities.User{Email: "a@x.io", AccountStatus: entities.AccountActive})

	updated, err := uc.UpdateStatus(context.Background(), uuid.New(), user.ID, &entities.UpdateUserStatusInput{
		Status: entities.AccountSuspended,
		Reason: null.StringFrom("spam"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AccountSuspended, updated.AccountStatus)
}
