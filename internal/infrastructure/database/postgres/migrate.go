package postgres

import (
	"fmt"

	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
)

// Migrate creates or updates the schema for all tables.
func (d *DB) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.UserModel{},
		&models.HospitalModel{},
		&models.RequestModel{},
		&models.DonationModel{},
		&models.PasswordResetModel{},
	); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	// A reset token belongs to exactly one account kind.
	drop := `ALTER TABLE password_resets DROP CONSTRAINT IF EXISTS chk_password_resets_single_owner`
	if err := d.DB.Exec(drop).Error; err != nil {
		return fmt.Errorf("error resetting password reset constraint: %w", err)
	}
	add := `ALTER TABLE password_resets
		ADD CONSTRAINT chk_password_resets_single_owner
		CHECK ((user_id IS NULL) <> (hospital_id IS NULL))`
	if err := d.DB.Exec(add).Error; err != nil {
		return fmt.Errorf("error adding password reset constraint: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
