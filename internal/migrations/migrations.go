// Package migrations creates and updates the stocks-mcp database schema.
package migrations

import (
	"fmt"

	"github.com/stocksmcp/stocks-mcp/internal/model"
	"gorm.io/gorm"
)

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.ToolCall{}); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
