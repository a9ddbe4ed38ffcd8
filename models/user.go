package models

import "time"

type User struct {
	ID           uint       `gorm:"column:id;primary_key" json:"id"`
	Username     string     `gorm:"column:username;type:varchar(191);unique_index;not null" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (u *User) TableName() string {
	return "users"
}
