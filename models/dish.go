package models

import "time"

type Dish struct {
	ID        int64      `gorm:"column:id;primary_key" json:"id"`
	Name      string     `gorm:"column:name;type:varchar(191);unique_index;not null" json:"name"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (d *Dish) TableName() string {
	return "dishes"
}
