package dbhelper

import (
	"fmt"
	"log"

	"lookupapi/models"

	"gorm.io/gorm"
)

func SetupCleaner(db *gorm.DB) func() {

	return func() {

		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Look{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ClothingItem{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.UserProfile{})

	}
}

func Migrate(db *gorm.DB, model interface{}) error {
	err := db.AutoMigrate(model)
	if err != nil {
		log.Printf("Error while migrating %T", model)
		return fmt.Errorf("migrate %T: %w", model, err)
	}
	return nil
}
