package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/pkg/utils"
)

type adminRepoMock struct {
	admins   []*entities.AdminUser
	touched  []uuid.UUID
	touchErr error
}

func (m *adminRepoMock) GetActiveByEmail(_ context.Context, email string) (*entities.AdminUser, error) {
	for _, a := range m.admins {
		if a.Email == email && a.IsActive {
			return a, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (m *adminRepoMock) GetByID(_ context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (m *adminRepoMock) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.touched = append(m.touched, id)
	return nil
}

type userRepoMock struct {
	users     map[uuid.UUID]*entities.User
	listTotal int64
	listErr   error

	statusUpdates  map[uuid.UUID]entities.AccountStatus
	outcomeUpdates map[uuid.UUID][2]string
	updateErr      error
}

func newUserRepoMock() *userRepoMock {
	return &userRepoMock{
		users:          make(map[uuid.UUID]*entities.User),
		statusUpdates:  make(map[uuid.UUID]entities.AccountStatus),
		outcomeUpdates: make(map[uuid.UUID][2]string),
	}
}

func (m *userRepoMock) add(u *entities.User) *entities.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	m.users[u.ID] = u
	return u
}

func (m *userRepoMock) List(_ context.Context, _ entities.UserFilter, _ utils.PaginationParams) ([]*entities.User, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	out := make([]*entities.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	total := m.listTotal
	if total == 0 {
		total = int64(len(out))
	}
	return out, total, nil
}

func (m *userRepoMock) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (m *userRepoMock) UpdateAccountStatus(_ context.Context, id uuid.UUID, status entities.AccountStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statusUpdates[id] = status
	if u, ok := m.users[id]; ok {
		u.AccountStatus = status
	}
	return nil
}

func (m *userRepoMock) SetVerificationOutcome(_ context.Context, id uuid.UUID, vs entities.VerificationStatus, as entities.AccountStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.outcomeUpdates[id] = [2]string{string(vs), string(as)}
	return nil
}

func (m *userRepoMock) Upsert(_ context.Context, u *entities.User) error {
	m.add(u)
	return nil
}

type verifRepoMock struct {
	items map[uuid.UUID]*entities.VerificationItem

	markErr  error
	statsErr error
	stats    *entities.VerificationStatistics
	statsHit int
}

func newVerifRepoMock() *verifRepoMock {
	return &verifRepoMock{items: make(map[uuid.UUID]*entities.VerificationItem)}
}

func (m *verifRepoMock) add(item *entities.VerificationItem) *entities.VerificationItem {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = item
	return item
}

func (m *verifRepoMock) Create(_ context.Context, item *entities.VerificationItem) error {
	m.add(item)
	return nil
}

func (m *verifRepoMock) ListByStatus(_ context.Context, status string) ([]*entities.VerificationItem, error) {
	out := make([]*entities.VerificationItem, 0, len(m.items))
	for _, item := range m.items {
		if status == "" || status == "all" || string(item.Status) == status {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *verifRepoMock) GetByID(_ context.Context, id uuid.UUID) (*entities.VerificationItem, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (m *verifRepoMock) MarkReviewed(_ context.Context, id uuid.UUID, status entities.VerificationStatus, reviewedBy uuid.UUID, notes null.String) error {
	if m.markErr != nil {
		return m.markErr
	}
	item, ok := m.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if item.Status.Terminal() {
		return domainerrors.ErrAlreadyReviewed
	}
	item.Status = status
	item.ReviewedBy = null.StringFrom(reviewedBy.String())
	item.ReviewNotes = notes
	return nil
}

func (m *verifRepoMock) Statistics(_ context.Context) (*entities.VerificationStatistics, error) {
	m.statsHit++
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	if m.stats != nil {
		return m.stats, nil
	}
	return &entities.VerificationStatistics{}, nil
}

type platformRepoMock struct {
	platforms map[uuid.UUID]*entities.Platform
}

func newPlatformRepoMock() *platformRepoMock {
	return &platformRepoMock{platforms: make(map[uuid.UUID]*entities.Platform)}
}

func (m *platformRepoMock) add(p *entities.Platform) *entities.Platform {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.platforms[p.ID] = p
	return p
}

func (m *platformRepoMock) List(_ context.Context) ([]*entities.Platform, error) {
	out := make([]*entities.Platform, 0, len(m.platforms))
	for _, p := range m.platforms {
		out = append(out, p)
	}
	return out, nil
}

func (m *platformRepoMock) GetByID(_ context.Context, id uuid.UUID) (*entities.Platform, error) {
	if p, ok := m.platforms[id]; ok {
		return p, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (m *platformRepoMock) GetByName(_ context.Context, name string) (*entities.Platform, error) {
	for _, p := range m.platforms {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

type auditRepoMock struct {
	entries   []*entities.AuditEntry
	appendErr error
}

func (m *auditRepoMock) Append(_ context.Context, entry *entities.AuditEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *auditRepoMock) ListRecent(_ context.Context, limit int) ([]*entities.AuditEntry, error) {
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}
