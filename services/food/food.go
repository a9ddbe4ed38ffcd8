package food

import (
	"errors"
	"fmt"
	"strings"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingFields = errors.New("name, calories and protein are required")
	ErrInvalidNumber = errors.New("calories and protein must be non-negative numbers")
)

type FoodService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewFoodService(db *gorm.DB, logger *logrus.Logger) *FoodService {
	return &FoodService{db: db, logger: logger.WithField("task", "food")}
}

// List returns the catalogue ordered by name.
func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Order("name").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	return foods, nil
}

// Upsert inserts a food or, when the name exists, replaces its nutrients.
// created reports which of the two happened.
func (s *FoodService) Upsert(param structs.FoodParam) (food *models.Food, created bool, err error) {
	name := strings.TrimSpace(param.Name)
	kcal := strings.TrimSpace(param.CaloriesPer100g)
	prot := strings.TrimSpace(param.ProteinPer100g)
	if name == "" || kcal == "" || prot == "" {
		return nil, false, ErrMissingFields
	}
	kcalValue, err := services.ParseNumber(kcal)
	if err != nil || kcalValue < 0 {
		return nil, false, ErrInvalidNumber
	}
	protValue, err := services.ParseNumber(prot)
	if err != nil || protValue < 0 {
		return nil, false, ErrInvalidNumber
	}

	var existing models.Food
	err = s.db.Where("name = ?", name).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		f := models.Food{Name: name, CaloriesPer100g: kcalValue, ProteinPer100g: protValue}
		if err := s.db.Create(&f).Error; err != nil {
			return nil, false, fmt.Errorf("create food: %w", err)
		}
		s.logger.WithFields(logrus.Fields{"food_id": f.ID, "name": name}).Info("food created")
		return &f, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("lookup food: %w", err)
	}

	if err := s.db.Model(&existing).Updates(map[string]interface{}{
		"calories_per_100g": kcalValue,
		"protein_per_100g":  protValue,
	}).Error; err != nil {
		return nil, false, fmt.Errorf("update food: %w", err)
	}
	existing.CaloriesPer100g = kcalValue
	existing.ProteinPer100g = protValue
	s.logger.WithFields(logrus.Fields{"food_id": existing.ID, "name": name}).Info("food updated")
	return &existing, false, nil
}
