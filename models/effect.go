package models

type Effect struct {
	ID   int64  `gorm:"column:id;primary_key" json:"id"`
	Name string `gorm:"column:name;type:varchar(191);unique_index;not null" json:"name"`
}

// TableName sets the insert table name for this struct type
func (e *Effect) TableName() string {
	return "effects"
}
