package dish

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"nutriplan/database"
	"nutriplan/models"
	"nutriplan/services/profile"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

func newTestService(t *testing.T) (*DishService, *gorm.DB) {
	t.Helper()
	db, err := database.InitDatabasePool(structs.DatabaseConfig{Client: database.ClientSqlite})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedEffects(db, []string{"Cut", "Bulk"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	logger := logrus.New()
	logger.Out = io.Discard
	return NewDishService(db, logger), db
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func TestCreate(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.Create(structs.DishParam{Name: "  "}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("empty: want=ErrMissingName got=%v", err)
	}
	if _, err := s.Create(structs.DishParam{Name: "Suppe"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(structs.DishParam{Name: "Salat"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(structs.DishParam{Name: "Suppe"}); !errors.Is(err, ErrDishExists) {
		t.Fatalf("duplicate: want=ErrDishExists got=%v", err)
	}
	dishes, err := s.List()
	if err != nil || len(dishes) != 2 || dishes[0].Name != "Salat" {
		t.Fatalf("List: got=%+v %v", dishes, err)
	}
}

func TestIngredientsAndTotals(t *testing.T) {
	s, db := newTestService(t)
	d, err := s.Create(structs.DishParam{Name: "Reispfanne"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	reis := models.Food{Name: "Reis", CaloriesPer100g: 130, ProteinPer100g: 2.7}
	huhn := models.Food{Name: "Huhn", CaloriesPer100g: 165, ProteinPer100g: 31}
	for _, f := range []*models.Food{&reis, &huhn} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("create food: %v", err)
		}
	}

	if _, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: id(reis.ID)}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("missing grams: want=ErrMissingFields got=%v", err)
	}
	for _, grams := range []string{"0", "-5", "viel", "Inf", "+Inf", "NaN"} {
		if _, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: id(reis.ID), Grams: grams}); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("grams %q: want=ErrInvalidQuantity got=%v", grams, err)
		}
	}
	if _, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: "999", Grams: "10"}); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("unknown food: want=ErrFoodNotFound got=%v", err)
	}
	if _, err := s.AddIngredient(999, structs.IngredientParam{FoodID: id(reis.ID), Grams: "10"}); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("unknown dish: want=ErrDishNotFound got=%v", err)
	}

	if updated, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: id(reis.ID), Grams: "100"}); err != nil || updated {
		t.Fatalf("add reis: updated=%v err=%v", updated, err)
	}
	if _, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: id(huhn.ID), Grams: "150"}); err != nil {
		t.Fatalf("add huhn: %v", err)
	}
	if updated, err := s.AddIngredient(d.ID, structs.IngredientParam{FoodID: id(reis.ID), Grams: "200"}); err != nil || !updated {
		t.Fatalf("update reis: updated=%v err=%v", updated, err)
	}

	detail, err := s.Get(d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Ingredients) != 2 || detail.Ingredients[0].Name != "Huhn" || detail.Ingredients[1].Grams != 200 {
		t.Fatalf("ingredients: got=%+v", detail.Ingredients)
	}
	// 130*2 + 165*1.5 = 507.5, 2.7*2 + 31*1.5 = 51.9
	if detail.TotalKcal != 507.5 || detail.TotalProtein != 51.9 {
		t.Fatalf("totals: got=%v/%v", detail.TotalKcal, detail.TotalProtein)
	}
	if len(detail.Foods) != 2 || len(detail.Effects) != 2 {
		t.Fatalf("catalogue: foods=%d effects=%d", len(detail.Foods), len(detail.Effects))
	}

	if _, err := s.Get(999); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("Get unknown: want=ErrDishNotFound got=%v", err)
	}
}

func TestDishEffects(t *testing.T) {
	s, db := newTestService(t)
	d, err := s.Create(structs.DishParam{Name: "Suppe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	var cut models.Effect
	if err := db.Where("name = ?", "Cut").First(&cut).Error; err != nil {
		t.Fatalf("effect: %v", err)
	}

	if err := s.AddEffect(d.ID, "x"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("bad id: want=ErrInvalidReference got=%v", err)
	}
	if err := s.AddEffect(d.ID, "999"); !errors.Is(err, profile.ErrEffectNotFound) {
		t.Fatalf("unknown effect: want=ErrEffectNotFound got=%v", err)
	}
	if err := s.AddEffect(d.ID, id(cut.ID)); err != nil {
		t.Fatalf("AddEffect: %v", err)
	}
	if err := s.AddEffect(d.ID, id(cut.ID)); !errors.Is(err, ErrEffectAssigned) {
		t.Fatalf("duplicate: want=ErrEffectAssigned got=%v", err)
	}
	detail, err := s.Get(d.ID)
	if err != nil || len(detail.DishEffects) != 1 || detail.DishEffects[0].Name != "Cut" {
		t.Fatalf("dish effects: got=%+v %v", detail, err)
	}
	if err := s.RemoveEffect(d.ID, id(cut.ID)); err != nil {
		t.Fatalf("RemoveEffect: %v", err)
	}
	detail, _ = s.Get(d.ID)
	if len(detail.DishEffects) != 0 {
		t.Fatalf("after remove: got=%+v", detail.DishEffects)
	}
}

func TestTotals(t *testing.T) {
	kcal, prot := Totals(nil)
	if kcal != 0 || prot != 0 {
		t.Fatalf("empty: got=%v/%v", kcal, prot)
	}
	kcal, prot = Totals([]structs.Ingredient{{Grams: 33, CaloriesPer100g: 100, ProteinPer100g: 10}})
	if kcal != 33 || prot != 3.3 {
		t.Fatalf("single: got=%v/%v", kcal, prot)
	}
}
