package models

import "time"

// PlanEntry assigns one dish to one meal slot of one day inside a generated range.
// Entries are only ever written by plan generation and replaced as a whole per
// (user_id, start_date, end_date).
type PlanEntry struct {
	ID        int64      `gorm:"column:id;primary_key" json:"id"`
	UserID    uint       `gorm:"column:user_id;index:idx_plan_range" json:"user_id"`
	DishID    int64      `gorm:"column:dish_id" json:"dish_id"`
	Weekday   string     `gorm:"column:weekday" json:"weekday"`
	Meal      string     `gorm:"column:meal" json:"meal"`
	PlanDate  string     `gorm:"column:plan_date;type:varchar(10)" json:"plan_date"`
	DayNumber int        `gorm:"column:day_number" json:"day_number"`
	SlotOrder int        `gorm:"column:slot_order" json:"slot_order"`
	StartDate string     `gorm:"column:start_date;type:varchar(10);index:idx_plan_range" json:"start_date"`
	EndDate   string     `gorm:"column:end_date;type:varchar(10);index:idx_plan_range" json:"end_date"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the insert table name for this struct type
func (p *PlanEntry) TableName() string {
	return "plan_entries"
}
