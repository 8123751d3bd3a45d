package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。orderとproductの組で一意（1注文1商品1行）。
type Item struct {
	OrderID      string          `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`
	ProductID    string          `gorm:"column:product_id;type:uuid;primaryKey" json:"product_id"`
	ItemQuantity int64           `gorm:"column:item_quantity;not null" json:"item_quantity"`
	ItemPrice    decimal.Decimal `gorm:"column:item_price;type:numeric(10,2);not null" json:"item_price"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (Item) TableName() string { return "item" }
