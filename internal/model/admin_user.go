package model

import "time"

// AdminUser 管理员账号表 — 对应 admin_users
type AdminUser struct {
	ID           int       `gorm:"primaryKey"                             json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"             json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `gorm:"not null"                               json:"-"`
	UpdatedAt    time.Time `gorm:"not null"                               json:"-"`
}

// TableName 指定表名
func (AdminUser) TableName() string { return "admin_users" }
