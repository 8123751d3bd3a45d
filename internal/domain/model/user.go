package model

import "time"

// 営業担当者。user_passwordはbcryptハッシュでレスポンスには出さない。
type User struct {
	UserID       string    `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(50);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(40);not null;uniqueIndex" json:"user_email"`
	UserPhone    string    `gorm:"column:user_phone;type:varchar(15);not null" json:"user_phone"`
	UserAccount  string    `gorm:"column:user_account;type:varchar(50);not null;uniqueIndex" json:"user_account"`
	UserPassword string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
