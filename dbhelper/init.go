package dbhelper

import (
	"fmt"
	"log"

	"lookupapi/config"
	"lookupapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB connects to the remote store and migrates its tables.
func SetupDB(cfg config.DatabaseConfig) (*gorm.DB, error) {

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database is unreachable: %w", err)
	}

	for _, model := range []interface{}{&models.UserProfile{}, &models.ClothingItem{}, &models.Look{}} {
		if err := Migrate(db, model); err != nil {
			return nil, err
		}
	}
	log.Printf("[DB] Connected to %s:%s/%s", cfg.Host, cfg.Port, cfg.Name)

	return db, nil
}

// SetupTestDB connects to the local test database. Tests skip when it is down.
func SetupTestDB() (*gorm.DB, error) {
	return SetupDB(config.DatabaseConfig{
		Username:        "lookup",
		Password:        "lookup",
		Host:            "localhost",
		Port:            "5432",
		Name:            "lookup_test",
		MaxIdleConns:    2,
		MaxOpenConns:    10,
		ConnMaxLifetime: 0,
	})
}
