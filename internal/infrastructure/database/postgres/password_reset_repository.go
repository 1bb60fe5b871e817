package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
)

type PasswordResetRepository struct {
	db *DB
}

func NewPasswordResetRepository(db *DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, reset *domainAuth.PasswordReset) error {
	if err := reset.Validate(); err != nil {
		return err
	}

	reset.ID = uuid.New()
	reset.CreatedAt = time.Now()

	dbModel := &models.PasswordResetModel{
		ID:         reset.ID,
		UserID:     reset.UserID,
		HospitalID: reset.HospitalID,
		Token:      reset.Token,
		ExpiresAt:  reset.ExpiresAt,
		CreatedAt:  reset.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}

	return nil
}

func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*domainAuth.PasswordReset, error) {
	var dbModel models.PasswordResetModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ?", token).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrResetTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	return &domainAuth.PasswordReset{
		ID:         dbModel.ID,
		UserID:     dbModel.UserID,
		HospitalID: dbModel.HospitalID,
		Token:      dbModel.Token,
		ExpiresAt:  dbModel.ExpiresAt,
		CreatedAt:  dbModel.CreatedAt,
	}, nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, token string) error {
	result := r.db.DB.WithContext(ctx).
		Where("token = ?", token).
		Delete(&models.PasswordResetModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete password reset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrResetTokenNotFound
	}

	return nil
}

// Consume rewrites the owner's password hash and removes the token in one
// transaction, so a failed update never burns the token.
func (r *PasswordResetRepository) Consume(ctx context.Context, reset *domainAuth.PasswordReset, passwordHash string) error {
	if err := reset.Validate(); err != nil {
		return err
	}

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		switch {
		case reset.UserID != nil:
			result := tx.Model(&models.UserModel{}).
				Where("id = ?", *reset.UserID).
				Updates(map[string]interface{}{
					"password_hash": passwordHash,
					"updated_at":    now,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update user password: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return appErrors.ErrResetTokenNotFound
			}
		case reset.HospitalID != nil:
			result := tx.Model(&models.HospitalModel{}).
				Where("id = ?", *reset.HospitalID).
				Updates(map[string]interface{}{
					"password_hash": passwordHash,
					"updated_at":    now,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update hospital password: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return appErrors.ErrResetTokenNotFound
			}
		}

		result := tx.Where("token = ?", reset.Token).Delete(&models.PasswordResetModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete password reset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrResetTokenNotFound
		}

		return nil
	})
}
