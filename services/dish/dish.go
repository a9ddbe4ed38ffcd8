package dish

import (
	"errors"
	"fmt"
	"strings"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/services/profile"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingName      = errors.New("dish name is required")
	ErrDishExists       = errors.New("dish already exists")
	ErrDishNotFound     = errors.New("dish does not exist")
	ErrFoodNotFound     = errors.New("food does not exist")
	ErrMissingFields    = errors.New("food and quantity are required")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrEffectAssigned   = errors.New("effect already assigned")
	ErrInvalidReference = errors.New("invalid reference id")
)

// Detail is everything the dish page shows.
type Detail struct {
	Dish         models.Dish
	Ingredients  []structs.Ingredient
	TotalKcal    float64
	TotalProtein float64
	Effects      []models.Effect
	DishEffects  []models.Effect
	Foods        []models.Food
}

type DishService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewDishService(db *gorm.DB, logger *logrus.Logger) *DishService {
	return &DishService{db: db, logger: logger.WithField("task", "dish")}
}

// List returns all dishes ordered by name.
func (s *DishService) List() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.Order("name").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	return dishes, nil
}

// Create adds a dish with a unique name.
func (s *DishService) Create(param structs.DishParam) (*models.Dish, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	var count int
	if err := s.db.Model(&models.Dish{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("lookup dish: %w", err)
	}
	if count > 0 {
		return nil, ErrDishExists
	}
	d := models.Dish{Name: name}
	if err := s.db.Create(&d).Error; err != nil {
		return nil, fmt.Errorf("create dish: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"dish_id": d.ID, "name": name}).Info("dish created")
	return &d, nil
}

func (s *DishService) find(dishID int64) (*models.Dish, error) {
	var d models.Dish
	err := s.db.Where("id = ?", dishID).First(&d).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrDishNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load dish: %w", err)
	}
	return &d, nil
}

// Get loads a dish with its ingredients, nutrition totals and effects.
func (s *DishService) Get(dishID int64) (*Detail, error) {
	d, err := s.find(dishID)
	if err != nil {
		return nil, err
	}
	detail := &Detail{Dish: *d}

	if err := s.db.Table("dish_has_foods").
		Select("foods.id AS food_id, foods.name, dish_has_foods.grams, foods.calories_per_100g, foods.protein_per_100g").
		Joins("JOIN foods ON foods.id = dish_has_foods.food_id").
		Where("dish_has_foods.dish_id = ?", dishID).
		Order("foods.name").
		Scan(&detail.Ingredients).Error; err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	detail.TotalKcal, detail.TotalProtein = Totals(detail.Ingredients)

	if err := s.db.Order("name").Find(&detail.Effects).Error; err != nil {
		return nil, fmt.Errorf("load effects: %w", err)
	}
	if err := s.db.Table("effects").
		Select("effects.id, effects.name").
		Joins("JOIN dish_has_effects ON dish_has_effects.effect_id = effects.id").
		Where("dish_has_effects.dish_id = ?", dishID).
		Order("effects.name").
		Scan(&detail.DishEffects).Error; err != nil {
		return nil, fmt.Errorf("load dish effects: %w", err)
	}
	if err := s.db.Order("name").Find(&detail.Foods).Error; err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	return detail, nil
}

// Totals sums calories and protein over the ingredient quantities, rounded to 0.1.
func Totals(ingredients []structs.Ingredient) (kcal, protein float64) {
	for _, i := range ingredients {
		kcal += i.CaloriesPer100g * i.Grams / 100.0
		protein += i.ProteinPer100g * i.Grams / 100.0
	}
	return services.RoundTo(kcal, 1), services.RoundTo(protein, 1)
}

// AddIngredient adds a food to the dish or replaces the quantity if present.
// updated reports the replace case.
func (s *DishService) AddIngredient(dishID int64, param structs.IngredientParam) (updated bool, err error) {
	rawFood := strings.TrimSpace(param.FoodID)
	rawGrams := strings.TrimSpace(param.Grams)
	if rawFood == "" || rawGrams == "" {
		return false, ErrMissingFields
	}
	grams, err := services.ParseNumber(rawGrams)
	if err != nil || grams <= 0 {
		return false, ErrInvalidQuantity
	}
	foodID, err := profile.ParseID(rawFood)
	if err != nil {
		return false, ErrInvalidReference
	}
	if _, err := s.find(dishID); err != nil {
		return false, err
	}
	var count int
	if err := s.db.Model(&models.Food{}).Where("id = ?", foodID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup food: %w", err)
	}
	if count == 0 {
		return false, ErrFoodNotFound
	}

	if err := s.db.Model(&models.DishHasFood{}).Where("dish_id = ? AND food_id = ?", dishID, foodID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup ingredient: %w", err)
	}
	if count > 0 {
		if err := s.db.Model(&models.DishHasFood{}).Where("dish_id = ? AND food_id = ?", dishID, foodID).Update("grams", grams).Error; err != nil {
			return false, fmt.Errorf("update ingredient: %w", err)
		}
		return true, nil
	}
	if err := s.db.Create(&models.DishHasFood{DishID: dishID, FoodID: foodID, Grams: grams}).Error; err != nil {
		return false, fmt.Errorf("add ingredient: %w", err)
	}
	return false, nil
}

// AddEffect tags the dish with an effect.
func (s *DishService) AddEffect(dishID int64, rawEffectID string) error {
	effectID, err := profile.ParseID(rawEffectID)
	if err != nil {
		return ErrInvalidReference
	}
	if _, err := s.find(dishID); err != nil {
		return err
	}
	if err := profile.EffectExists(s.db, effectID); err != nil {
		return err
	}
	var count int
	if err := s.db.Model(&models.DishHasEffect{}).Where("dish_id = ? AND effect_id = ?", dishID, effectID).Count(&count).Error; err != nil {
		return fmt.Errorf("lookup dish effect: %w", err)
	}
	if count > 0 {
		return ErrEffectAssigned
	}
	if err := s.db.Create(&models.DishHasEffect{DishID: dishID, EffectID: effectID}).Error; err != nil {
		return fmt.Errorf("add dish effect: %w", err)
	}
	return nil
}

// RemoveEffect drops an effect tag from the dish.
func (s *DishService) RemoveEffect(dishID int64, rawEffectID string) error {
	effectID, err := profile.ParseID(rawEffectID)
	if err != nil {
		return ErrInvalidReference
	}
	if err := s.db.Where("dish_id = ? AND effect_id = ?", dishID, effectID).Delete(&models.DishHasEffect{}).Error; err != nil {
		return fmt.Errorf("remove dish effect: %w", err)
	}
	return nil
}
