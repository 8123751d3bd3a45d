package model

import "time"

type Product struct {
	ProductID          string    `gorm:"column:product_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"product_id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(50);not null" json:"product_name"`
	ProductDescription *string   `gorm:"column:product_description;type:varchar(255)" json:"product_description"`
	ProductQuantity    int64     `gorm:"column:product_quantity;not null" json:"product_quantity"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
