package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/services/calorie"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingFields   = errors.New("name and weight are required")
	ErrInvalidNumber   = errors.New("weight and height must be numbers")
	ErrInvalidWeight   = errors.New("weight must be positive")
	ErrProfileMissing  = errors.New("profile does not exist")
	ErrEffectNotFound  = errors.New("effect does not exist")
	ErrEffectAssigned  = errors.New("effect already assigned")
	ErrInvalidEffectID = errors.New("invalid effect id")
)

type ProfileService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewProfileService(db *gorm.DB, logger *logrus.Logger) *ProfileService {
	return &ProfileService{db: db, logger: logger.WithField("task", "profile")}
}

// Get returns the user's profile or nil when none has been saved yet.
func (s *ProfileService) Get(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

// Exists reports whether the user has saved a profile.
func (s *ProfileService) Exists(userID uint) (bool, error) {
	var count int
	if err := s.db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count profile: %w", err)
	}
	return count > 0, nil
}

// Save validates the form, recomputes the calorie target and upserts the profile.
func (s *ProfileService) Save(userID uint, param structs.ProfileParam) (*models.Profile, error) {
	name := strings.TrimSpace(param.Name)
	weight := strings.TrimSpace(param.WeightKg)
	height := strings.TrimSpace(param.HeightCm)
	if name == "" || weight == "" {
		return nil, ErrMissingFields
	}

	weightKg, err := services.ParseNumber(weight)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	var heightCm *float64
	if height != "" {
		h, err := services.ParseNumber(height)
		if err != nil || h <= 0 {
			return nil, ErrInvalidNumber
		}
		heightCm = &h
	}

	activity := calorie.NormalizeActivity(param.ActivityLevel)
	goal := calorie.NormalizeGoal(param.Goal)
	p := models.Profile{
		UserID:        userID,
		Name:          name,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		ActivityLevel: activity,
		Goal:          goal,
		DailyCalories: calorie.Estimate(weightKg, heightCm, activity, goal),
	}

	exists, err := s.Exists(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = s.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"name":           p.Name,
			"weight_kg":      p.WeightKg,
			"height_cm":      p.HeightCm,
			"activity_level": p.ActivityLevel,
			"goal":           p.Goal,
			"daily_calories": p.DailyCalories,
		}).Error
	} else {
		err = s.db.Create(&p).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "kcal": p.DailyCalories}).Info("profile saved")
	return &p, nil
}

// Effects returns the effects tagged on the user ordered by name.
func (s *ProfileService) Effects(userID uint) ([]models.Effect, error) {
	var effects []models.Effect
	err := s.db.Table("effects").
		Select("effects.id, effects.name").
		Joins("JOIN user_has_effects ON user_has_effects.effect_id = effects.id").
		Where("user_has_effects.user_id = ?", userID).
		Order("effects.name").
		Scan(&effects).Error
	if err != nil {
		return nil, fmt.Errorf("load user effects: %w", err)
	}
	return effects, nil
}

// EffectIDs returns only the ids of the user's effects.
func (s *ProfileService) EffectIDs(userID uint) ([]int64, error) {
	var ids []int64
	if err := s.db.Model(&models.UserHasEffect{}).Where("user_id = ?", userID).Pluck("effect_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("load user effect ids: %w", err)
	}
	return ids, nil
}

// AllEffects lists the shared effect catalogue.
func (s *ProfileService) AllEffects() ([]models.Effect, error) {
	var effects []models.Effect
	if err := s.db.Order("name").Find(&effects).Error; err != nil {
		return nil, fmt.Errorf("load effects: %w", err)
	}
	return effects, nil
}

// AddEffect tags the user with an effect. A saved profile is required.
func (s *ProfileService) AddEffect(userID uint, rawEffectID string) error {
	effectID, err := ParseID(rawEffectID)
	if err != nil {
		return ErrInvalidEffectID
	}
	exists, err := s.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProfileMissing
	}
	if err := EffectExists(s.db, effectID); err != nil {
		return err
	}

	var count int
	if err := s.db.Model(&models.UserHasEffect{}).Where("user_id = ? AND effect_id = ?", userID, effectID).Count(&count).Error; err != nil {
		return fmt.Errorf("lookup user effect: %w", err)
	}
	if count > 0 {
		return ErrEffectAssigned
	}
	if err := s.db.Create(&models.UserHasEffect{UserID: userID, EffectID: effectID}).Error; err != nil {
		return fmt.Errorf("add user effect: %w", err)
	}
	return nil
}

// RemoveEffect drops the tag; removing an unassigned effect is not an error.
func (s *ProfileService) RemoveEffect(userID uint, rawEffectID string) error {
	effectID, err := ParseID(rawEffectID)
	if err != nil {
		return ErrInvalidEffectID
	}
	if err := s.db.Where("user_id = ? AND effect_id = ?", userID, effectID).Delete(&models.UserHasEffect{}).Error; err != nil {
		return fmt.Errorf("remove user effect: %w", err)
	}
	return nil
}

// EffectExists returns ErrEffectNotFound for unknown ids.
func EffectExists(db *gorm.DB, effectID int64) error {
	var count int
	if err := db.Model(&models.Effect{}).Where("id = ?", effectID).Count(&count).Error; err != nil {
		return fmt.Errorf("lookup effect: %w", err)
	}
	if count == 0 {
		return ErrEffectNotFound
	}
	return nil
}

// ParseID parses a positive numeric form id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
