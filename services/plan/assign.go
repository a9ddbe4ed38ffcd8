package plan

import (
	"time"

	"nutriplan/enums"
	"nutriplan/models"
)

// Assign fills every meal slot of every day from start to end (inclusive) with a dish.
// Dishes are taken round-robin with one running index over the whole range, so the
// result depends only on the dish order, the range and the slot order.
func Assign(start, end time.Time, dishes []models.Dish) []models.PlanEntry {
	if len(dishes) == 0 || end.Before(start) {
		return nil
	}
	startDate := start.Format(enums.DateLayout)
	endDate := end.Format(enums.DateLayout)

	entries := make([]models.PlanEntry, 0, (DaysInRange(start, end))*len(enums.MealSlots))
	idx := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := ISOWeekday(d)
		for slot, meal := range enums.MealSlots {
			dish := dishes[idx%len(dishes)]
			idx++
			entries = append(entries, models.PlanEntry{
				DishID:    dish.ID,
				Weekday:   enums.Weekdays[day-1],
				Meal:      meal,
				PlanDate:  d.Format(enums.DateLayout),
				DayNumber: day,
				SlotOrder: slot + 1,
				StartDate: startDate,
				EndDate:   endDate,
			})
		}
	}
	return entries
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// DaysInRange counts calendar days from start to end, both included.
func DaysInRange(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
