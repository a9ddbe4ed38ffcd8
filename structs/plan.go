package structs

// PlanRow is one plan entry joined with its dish name.
type PlanRow struct {
	ID        int64  `gorm:"column:id" json:"id"`
	Weekday   string `gorm:"column:weekday" json:"tag"`
	Meal      string `gorm:"column:meal" json:"mahlzeit"`
	Dish      string `gorm:"column:dish" json:"gericht"`
	PlanDate  string `gorm:"column:plan_date" json:"datum"`
	StartDate string `gorm:"column:start_date" json:"von_datum"`
	EndDate   string `gorm:"column:end_date" json:"bis_datum"`
}

// Ingredient is one food of a dish with its quantity.
type Ingredient struct {
	FoodID          int64   `gorm:"column:food_id" json:"lebensmittel_id"`
	Name            string  `gorm:"column:name" json:"name"`
	Grams           float64 `gorm:"column:grams" json:"menge_gramm"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"kalorien_pro_100g"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g" json:"proteine_pro_100g"`
}
