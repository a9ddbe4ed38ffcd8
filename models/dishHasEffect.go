package models

type DishHasEffect struct {
	DishID   int64 `gorm:"column:dish_id;primary_key;auto_increment:false" json:"dish_id"`
	EffectID int64 `gorm:"column:effect_id;primary_key;auto_increment:false" json:"effect_id"`
}

// TableName sets the insert table name for this struct type
func (d *DishHasEffect) TableName() string {
	return "dish_has_effects"
}
