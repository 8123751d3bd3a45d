package model

import "time"

// 注文の初期ステータス。
const StatusCodePending = "PENDING"

type Status struct {
	StatusID   string    `gorm:"column:status_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"status_id"`
	StatusName string    `gorm:"column:status_name;type:varchar(50);not null" json:"status_name"`
	StatusCode string    `gorm:"column:status_code;type:varchar(20);not null;uniqueIndex" json:"status_code"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (Status) TableName() string { return "status" }
