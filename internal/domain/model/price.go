package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品の価格履歴。取引日に適用される価格は
// price_date <= 取引日 のうち最新の1件。
type Price struct {
	PriceID     string          `gorm:"column:price_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"price_id"`
	ProductID   string          `gorm:"column:product_id;type:uuid;not null;index" json:"product_id"`
	PriceAmount decimal.Decimal `gorm:"column:price_amount;type:numeric(10,2);not null" json:"price_amount"`
	PriceDate   time.Time       `gorm:"column:price_date;type:date;not null" json:"price_date"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (Price) TableName() string { return "price" }
