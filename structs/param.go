package structs

type CredentialParam struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type ProfileParam struct {
	Name          string `form:"name"`
	WeightKg      string `form:"gewicht_kg"`
	HeightCm      string `form:"groesse_cm"`
	ActivityLevel string `form:"aktivitaetslevel"`
	Goal          string `form:"ziel"`
}

type EffectParam struct {
	EffectID string `form:"effekt_id"`
}

type FoodParam struct {
	Name            string `form:"name"`
	CaloriesPer100g string `form:"kalorien_pro_100g"`
	ProteinPer100g  string `form:"proteine_pro_100g"`
}

type DishParam struct {
	Name string `form:"name"`
}

type IngredientParam struct {
	FoodID string `form:"lebensmittel_id"`
	Grams  string `form:"menge_gramm"`
}

type PlanParam struct {
	StartDate string `form:"von_datum"`
	EndDate   string `form:"bis_datum"`
}
