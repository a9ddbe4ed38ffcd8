package models

import "time"

type Food struct {
	ID              int64      `gorm:"column:id;primary_key" json:"id"`
	Name            string     `gorm:"column:name;type:varchar(191);unique_index;not null" json:"name"`
	CaloriesPer100g float64    `gorm:"column:calories_per_100g" json:"calories_per_100g"`
	ProteinPer100g  float64    `gorm:"column:protein_per_100g" json:"protein_per_100g"`
	CreatedAt       *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (f *Food) TableName() string {
	return "foods"
}
