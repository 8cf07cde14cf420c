package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/haanhduc/mycontact/internal/infrastructure/db/models"
)

func Open(databaseURL string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return conn, nil
}

// Migrate creates the schema. The partial unique index on live phone
// numbers cannot be expressed with struct tags, so it is applied raw.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Category{},
		&models.ContactCategory{},
		&models.PasswordReset{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := conn.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS uq_contacts_owner_phone
ON contacts (user_id, phone_number)
WHERE NOT is_deleted
`).Error; err != nil {
		return fmt.Errorf("create phone index: %w", err)
	}

	return nil
}
