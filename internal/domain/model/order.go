package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID         string          `gorm:"column:order_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"order_id"`
	CustomerID      string          `gorm:"column:customer_id;type:uuid;not null;index" json:"customer_id"`
	UserID          string          `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	StatusID        string          `gorm:"column:status_id;type:uuid;not null;index" json:"status_id"`
	OrderTotal      decimal.Decimal `gorm:"column:order_total;type:numeric(10,2);not null;default:0.00" json:"order_total"`
	OrderDate       time.Time       `gorm:"column:order_date;not null;autoCreateTime;index:idx_orders_date_id,priority:1" json:"order_date"`
	OrderAttachment *string         `gorm:"column:order_attachment;type:varchar(255)" json:"order_attachment"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Status   Status   `gorm:"foreignKey:StatusID" json:"-"`
}

func (Order) TableName() string { return "orders" }
