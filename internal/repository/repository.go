package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Contribution ContributionRepository
	Scholarship  ScholarshipRepository
	AdminUser    AdminUserRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Contribution: NewContributionRepo(db),
		Scholarship:  NewScholarshipRepo(db),
		AdminUser:    NewAdminUserRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
