package gormrepo

import (
	"fmt"

	"towerwars/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the decision-log schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.TurnDecision{}); err != nil {
		return fmt.Errorf("migrate turn_decisions: %w", err)
	}
	return nil
}
