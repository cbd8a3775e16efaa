package repository

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio-twin/internal/model"
)

// Migrate creates or updates every table in model.Schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Schema()...); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}
