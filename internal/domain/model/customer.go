package model

import "time"

type Customer struct {
	CustomerID    string    `gorm:"column:customer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"customer_id"`
	CustomerName  string    `gorm:"column:customer_name;type:varchar(50);not null" json:"customer_name"`
	CustomerEmail string    `gorm:"column:customer_email;type:varchar(40);not null;uniqueIndex" json:"customer_email"`
	CustomerPhone string    `gorm:"column:customer_phone;type:varchar(15);not null" json:"customer_phone"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customer" }
