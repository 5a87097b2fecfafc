package dto

// ── 目录模块 DTO ──

// CreateScholarshipRequest 管理端新建目录条目请求
type CreateScholarshipRequest struct {
	Name               string   `json:"name"               binding:"required,max=255"`
	Organization       string   `json:"organization"       binding:"required,max=255"`
	HostCountry        string   `json:"hostCountry"        binding:"required,max=255"`
	Region             string   `json:"region"`
	TargetGroup        string   `json:"targetGroup"`
	Level              []string `json:"level"              binding:"required,min=1"`
	Deadline           string   `json:"deadline"`
	Funding            string   `json:"funding"            binding:"omitempty,oneof=Yes Partial No"`
	FundingDetails     string   `json:"fundingDetails"`
	ReturnHome         string   `json:"returnHome"         binding:"omitempty,oneof=Yes No"`
	Website            string   `json:"website"`
	Notes              string   `json:"notes"`
	Eligibility        string   `json:"eligibility"`
	ApplicationProcess string   `json:"applicationProcess"`
}

// UpdateScholarshipRequest 管理端编辑目录条目请求（仅更新非 nil 字段）
type UpdateScholarshipRequest struct {
	Name               *string   `json:"name"        binding:"omitempty,max=255"`
	Organization       *string   `json:"organization" binding:"omitempty,max=255"`
	HostCountry        *string   `json:"hostCountry" binding:"omitempty,max=255"`
	Region             *string   `json:"region"`
	TargetGroup        *string   `json:"targetGroup"`
	Level              *[]string `json:"level"`
	Deadline           *string   `json:"deadline"`
	Funding            *string   `json:"funding"     binding:"omitempty,oneof=Yes Partial No"`
	FundingDetails     *string   `json:"fundingDetails"`
	ReturnHome         *string   `json:"returnHome"  binding:"omitempty,oneof=Yes No"`
	Website            *string   `json:"website"`
	Notes              *string   `json:"notes"`
	Eligibility        *string   `json:"eligibility"`
	ApplicationProcess *string   `json:"applicationProcess"`
}

// CatalogFilterRequest 公开目录筛选参数（GET /api/scholarships/filter）
type CatalogFilterRequest struct {
	Region  string `form:"region"`
	Level   string `form:"level"`
	Funding string `form:"funding" binding:"omitempty,oneof=Yes Partial No"`
}

// [自证通过] internal/dto/scholarship.go
