package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return EnsureIndexes(db)
}

// EnsureIndexes adds the composite indexes gorm tags cannot express.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_blogs_user_updated
		ON blogs (user_id, updated_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_blogs_user_updated: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_users_email_active
		ON users (email, is_active);
	`).Error; err != nil {
		return fmt.Errorf("create idx_users_email_active: %w", err)
	}
	return nil
}
