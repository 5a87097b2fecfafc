//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=hba password=hba_password dbname=hba_scholarships_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Contribution{},
		&model.Scholarship{},
		&model.AdminUser{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	// 清理测试数据
	testDB.Exec("TRUNCATE contributions, scholarships, admin_users RESTART IDENTITY")

	os.Exit(code)
}

func cleanTables(t *testing.T) {
	t.Helper()
	if err := testDB.Exec("TRUNCATE contributions, scholarships RESTART IDENTITY").Error; err != nil {
		t.Fatalf("清理测试表失败: %v", err)
	}
}

func sampleContribution() *model.Contribution {
	return &model.Contribution{
		ScholarshipName:    "Test Scholarship",
		Organization:       "Test Org",
		Website:            "https://example.com",
		Level:              "Bachelor's",
		HostCountry:        "Canada",
		Deadline:           "2026-01-01",
		FundingType:        "Yes",
		Eligibility:        "Any",
		ApplicationProcess: "Apply online",
		SubmitterEmail:     "a@b.com",
		Status:             model.StatusPending,
	}
}

// ═══════════════════════════════════════════════════════════
// ContributionRepository
// ═══════════════════════════════════════════════════════════

func TestContributionRepo_CreateAndGet(t *testing.T) {
	cleanTables(t)
	repo := repository.NewContributionRepo(testDB)
	ctx := context.Background()

	c := sampleContribution()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Create 后应分配自增 ID")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.ScholarshipName != "Test Scholarship" {
		t.Errorf("期望 ScholarshipName=Test Scholarship，实际=%s", got.ScholarshipName)
	}
}

func TestContributionRepo_IDMonotonic(t *testing.T) {
	cleanTables(t)
	repo := repository.NewContributionRepo(testDB)
	ctx := context.Background()

	first := sampleContribution()
	second := sampleContribution()
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("ID 应单调递增: first=%d second=%d", first.ID, second.ID)
	}
}

func TestContributionRepo_ListByStatus(t *testing.T) {
	cleanTables(t)
	repo := repository.NewContributionRepo(testDB)
	ctx := context.Background()

	pending := sampleContribution()
	approved := sampleContribution()
	approved.Status = model.StatusApproved
	repo.Create(ctx, pending)
	repo.Create(ctx, approved)

	got, err := repo.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		t.Fatalf("ListByStatus 失败: %v", err)
	}
	if len(got) != 1 || got[0].ID != approved.ID {
		t.Errorf("期望仅返回 approved 记录，实际 %d 条", len(got))
	}
}

func TestContributionRepo_DeleteNotFound(t *testing.T) {
	cleanTables(t)
	repo := repository.NewContributionRepo(testDB)

	err := repo.Delete(context.Background(), 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// ScholarshipRepository
// ═══════════════════════════════════════════════════════════

func TestScholarshipRepo_LevelArrayRoundTrip(t *testing.T) {
	cleanTables(t)
	repo := repository.NewScholarshipRepo(testDB)
	ctx := context.Background()

	s := &model.Scholarship{
		Name:         "Array Test",
		Organization: "Org",
		HostCountry:  "Online",
		Region:       "Online",
		Level:        model.StringArray{"High School", "Bachelor's"},
		Funding:      "Partial",
		ReturnHome:   "No",
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if len(got.Level) != 2 || got.Level[0] != "High School" || got.Level[1] != "Bachelor's" {
		t.Errorf("TEXT[] 往返失败: %v", got.Level)
	}
}

func TestScholarshipRepo_SyncIDSequence(t *testing.T) {
	cleanTables(t)
	repo := repository.NewScholarshipRepo(testDB)
	ctx := context.Background()

	// 以显式 ID 写入（模拟种子数据）
	seeded := &model.Scholarship{
		ID:           11,
		Name:         "Seeded",
		Organization: "Org",
		HostCountry:  "Online",
		Level:        model.StringArray{"Bachelor's"},
	}
	if err := testDB.Create(seeded).Error; err != nil {
		t.Fatalf("种子写入失败: %v", err)
	}

	if err := repo.SyncIDSequence(ctx); err != nil {
		t.Fatalf("SyncIDSequence 失败: %v", err)
	}

	// 序列同步后新插入不应与显式 ID 冲突
	next := &model.Scholarship{
		Name:         "After Sync",
		Organization: "Org",
		HostCountry:  "Online",
		Level:        model.StringArray{"Bachelor's"},
	}
	if err := repo.Create(ctx, next); err != nil {
		t.Fatalf("序列同步后 Create 失败: %v", err)
	}
	if next.ID <= 11 {
		t.Errorf("新 ID 应大于种子最大 ID，实际=%d", next.ID)
	}
}
