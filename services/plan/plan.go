package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutriplan/enums"
	"nutriplan/models"
	"nutriplan/services/activityLog"
	"nutriplan/services/lock"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

const bulkChunkSize = 1000

var (
	ErrInvalidRange     = errors.New("end date is before start date")
	ErrProfileMissing   = errors.New("profile does not exist")
	ErrNoGoalSelected   = errors.New("no goal selected")
	ErrNoMatchingDishes = errors.New("no dishes match the selected goals")
)

// ProfileReader is the part of the profile store the generator needs.
type ProfileReader interface {
	Exists(userID uint) (bool, error)
	EffectIDs(userID uint) ([]int64, error)
}

// EventPublisher receives a plan.generated event after every successful run.
type EventPublisher interface {
	PublishEvent(event structs.EventModel) error
}

type PlanService struct {
	db        *gorm.DB
	profiles  ProfileReader
	locker    lock.Locker
	publisher EventPublisher
	logger    *logrus.Entry
}

// NewPlanService wires the generator. publisher may be nil.
func NewPlanService(db *gorm.DB, profiles ProfileReader, locker lock.Locker, publisher EventPublisher, logger *logrus.Logger) *PlanService {
	if locker == nil {
		locker = lock.NewMemoryLocker()
	}
	return &PlanService{
		db:        db,
		profiles:  profiles,
		locker:    locker,
		publisher: publisher,
		logger:    logger.WithField("task", "plan"),
	}
}

// Generate replaces the user's plan for [start, end] and returns the number of
// entries created. Validation failures return before anything is deleted.
func (s *PlanService) Generate(ctx context.Context, userID uint, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	startDate := start.Format(enums.DateLayout)
	endDate := end.Format(enums.DateLayout)
	logwr := s.logger.WithFields(logrus.Fields{"user_id": userID, "start_date": startDate, "end_date": endDate})

	exists, err := s.profiles.Exists(userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrProfileMissing
	}

	effectIDs, err := s.profiles.EffectIDs(userID)
	if err != nil {
		return 0, err
	}
	if len(effectIDs) == 0 {
		return 0, ErrNoGoalSelected
	}

	dishes, err := s.EligibleDishes(effectIDs)
	if err != nil {
		return 0, err
	}
	if len(dishes) == 0 {
		logwr.Info("no matching dishes, previous plan kept")
		return 0, ErrNoMatchingDishes
	}

	release, err := s.locker.Acquire(ctx, fmt.Sprintf("plan:%d:%s:%s", userID, startDate, endDate))
	if err != nil {
		return 0, fmt.Errorf("acquire plan lock: %w", err)
	}
	defer release()

	entries := Assign(start, end, dishes)
	now := time.Now()
	records := make([]interface{}, 0, len(entries))
	for i := range entries {
		entries[i].UserID = userID
		entries[i].CreatedAt = &now
		records = append(records, &entries[i])
	}

	if err := s.replace(userID, startDate, endDate, records); err != nil {
		logwr.WithField("error_message", err.Error()).Error("plan generation rolled back")
		return 0, err
	}
	created := len(records)
	logwr.WithFields(logrus.Fields{"created": created, "dishes": len(dishes)}).Info("plan generated")

	if err := activityLog.Insert(s.db, enums.LogPlanGenerate, "plan generated", userID, structs.ActivityLogJsonModel{
		Type:      enums.LogPlanGenerate,
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Result:    true,
		Created:   created,
		Message:   "ok",
	}); err != nil {
		logwr.WithField("error_message", err.Error()).Error("activity log insert failed")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishEvent(structs.EventModel{
			Event:     enums.EventPlanGenerated,
			UserID:    userID,
			StartDate: startDate,
			EndDate:   endDate,
			Created:   created,
		}); err != nil {
			logwr.WithField("error_message", err.Error()).Error("publish plan event failed")
		}
	}

	return created, nil
}

// replace deletes the previous entries of the range and inserts records in one transaction.
func (s *PlanService) replace(userID uint, startDate, endDate string, records []interface{}) (err error) {
	tx := s.db.Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = fmt.Errorf("plan transaction panic: %v", r)
		}
	}()

	if err := tx.Where("user_id = ? AND start_date = ? AND end_date = ?", userID, startDate, endDate).
		Delete(&models.PlanEntry{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous plan: %w", err)
	}

	if err := gormbulk.BulkInsert(tx, records, bulkChunkSize); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert plan entries: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit plan: %w", err)
	}
	return nil
}

// EligibleDishes returns the distinct dishes tagged with any of the effects, ordered by name.
func (s *PlanService) EligibleDishes(effectIDs []int64) ([]models.Dish, error) {
	var dishes []models.Dish
	err := s.db.Table("dishes").
		Select("DISTINCT dishes.id, dishes.name").
		Joins("JOIN dish_has_effects ON dish_has_effects.dish_id = dishes.id").
		Where("dish_has_effects.effect_id IN (?)", effectIDs).
		Order("dishes.name").
		Scan(&dishes).Error
	if err != nil {
		return nil, fmt.Errorf("load eligible dishes: %w", err)
	}
	return dishes, nil
}

func (s *PlanService) rows(userID uint) *gorm.DB {
	return s.db.Table("plan_entries").
		Select("plan_entries.id, plan_entries.weekday, plan_entries.meal, dishes.name AS dish, "+
			"plan_entries.plan_date, plan_entries.start_date, plan_entries.end_date").
		Joins("JOIN dishes ON dishes.id = plan_entries.dish_id").
		Where("plan_entries.user_id = ?", userID)
}

// List returns every plan entry of the user ordered by range, date and slot.
func (s *PlanService) List(userID uint) ([]structs.PlanRow, error) {
	var rows []structs.PlanRow
	if err := s.rows(userID).
		Order("plan_entries.start_date, plan_entries.end_date, plan_entries.plan_date, plan_entries.slot_order").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return rows, nil
}

// Export returns the entries of one generated range ordered by weekday, then meal slot.
func (s *PlanService) Export(userID uint, startDate, endDate string) ([]structs.PlanRow, error) {
	var rows []structs.PlanRow
	if err := s.rows(userID).
		Where("plan_entries.start_date = ? AND plan_entries.end_date = ?", startDate, endDate).
		Order("plan_entries.day_number, plan_entries.plan_date, plan_entries.slot_order").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load plan export: %w", err)
	}
	return rows, nil
}
