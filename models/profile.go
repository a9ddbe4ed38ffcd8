package models

import "time"

// Profile belongs to exactly one user. DailyCalories is derived on every save.
type Profile struct {
	UserID        uint       `gorm:"column:user_id;primary_key;auto_increment:false" json:"user_id"`
	Name          string     `gorm:"column:name" json:"name"`
	WeightKg      float64    `gorm:"column:weight_kg;not null" json:"weight_kg"`
	HeightCm      *float64   `gorm:"column:height_cm" json:"height_cm"`
	ActivityLevel string     `gorm:"column:activity_level" json:"activity_level"`
	Goal          string     `gorm:"column:goal" json:"goal"`
	DailyCalories int        `gorm:"column:daily_calories" json:"daily_calories"`
	CreatedAt     *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (p *Profile) TableName() string {
	return "user_profiles"
}
