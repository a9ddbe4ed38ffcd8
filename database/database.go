package database

import (
	"fmt"
	"time"

	"nutriplan/models"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const (
	ClientMysql  = "mysql"
	ClientSqlite = "sqlite3"
)

// InitDatabasePool opens the connection pool described by cfg.
func InitDatabasePool(cfg structs.DatabaseConfig) (*gorm.DB, error) {
	client := cfg.Client
	if client == "" {
		client = ClientMysql
	}

	var dsn string
	switch client {
	case ClientMysql:
		params := cfg.Params
		if params == "" {
			params = "charset=utf8mb4&parseTime=True&loc=Local"
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Db, params)
	case ClientSqlite:
		dsn = cfg.Db
		if dsn == "" {
			dsn = ":memory:"
		}
	default:
		return nil, fmt.Errorf("unsupported database client %q", client)
	}

	db, err := gorm.Open(client, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.LogMode(cfg.LogEnable == 1)

	if client == ClientSqlite {
		// every sqlite connection is its own database for ":memory:"
		db.DB().SetMaxOpenConns(1)
		return db, nil
	}

	if cfg.MaxIdle > 0 {
		db.DB().SetMaxIdleConns(int(cfg.MaxIdle))
	}
	if cfg.MaxOpenConn > 0 {
		db.DB().SetMaxOpenConns(int(cfg.MaxOpenConn))
	}
	if cfg.MaxLifeTime != "" {
		lifetime, err := time.ParseDuration(cfg.MaxLifeTime)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("database.max_life_time: %w", err)
		}
		db.DB().SetConnMaxLifetime(lifetime)
	}
	return db, nil
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Effect{},
		&models.UserHasEffect{},
		&models.Food{},
		&models.Dish{},
		&models.DishHasFood{},
		&models.DishHasEffect{},
		&models.PlanEntry{},
		&models.ActivityLog{},
	).Error
}

// SeedEffects makes sure every named effect exists. Existing rows are left alone.
func SeedEffects(db *gorm.DB, names []string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		var effect models.Effect
		if err := db.Where(models.Effect{Name: name}).FirstOrCreate(&effect).Error; err != nil {
			return fmt.Errorf("seed effect %q: %w", name, err)
		}
	}
	return nil
}
