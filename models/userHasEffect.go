package models

type UserHasEffect struct {
	UserID   uint  `gorm:"column:user_id;primary_key;auto_increment:false" json:"user_id"`
	EffectID int64 `gorm:"column:effect_id;primary_key;auto_increment:false" json:"effect_id"`
}

// TableName sets the insert table name for this struct type
func (u *UserHasEffect) TableName() string {
	return "user_has_effects"
}
