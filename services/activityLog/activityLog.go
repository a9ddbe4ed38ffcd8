package activityLog

import (
	"encoding/json"
	"time"

	"nutriplan/models"

	"github.com/jinzhu/gorm"
)

// Insert writes one row into the activity log table.
func Insert(db *gorm.DB, logName, description string, causerID uint, data interface{}) error {

	properties, err := json.Marshal(data)
	if err != nil {
		return err
	}

	insertTime := time.Now()
	activityLogEntity := models.ActivityLog{
		CreatedAt:   &insertTime,
		UpdatedAt:   &insertTime,
		LogName:     logName,
		Description: description,
		Properties:  string(properties),
	}
	if causerID != 0 {
		activityLogEntity.CauserID = causerID
		activityLogEntity.CauserType = "user"
	}

	return db.Create(&activityLogEntity).Error
}
