package models

type DishHasFood struct {
	DishID int64   `gorm:"column:dish_id;primary_key;auto_increment:false" json:"dish_id"`
	FoodID int64   `gorm:"column:food_id;primary_key;auto_increment:false" json:"food_id"`
	Grams  float64 `gorm:"column:grams;not null" json:"grams"`
}

// TableName sets the insert table name for this struct type
func (d *DishHasFood) TableName() string {
	return "dish_has_foods"
}
