package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
)

type HospitalRepository struct {
	db *DB
}

func NewHospitalRepository(db *DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

func (r *HospitalRepository) Create(ctx context.Context, h *domainHospital.Hospital) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	h.UpdatedAt = time.Now()

	dbModel := toHospitalModel(h)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return domainHospital.ErrHospitalAlreadyExists
		}
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	h.ID = dbModel.ID
	h.CreatedAt = dbModel.CreatedAt
	h.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *HospitalRepository) GetByID(ctx context.Context, hospitalID uuid.UUID) (*domainHospital.Hospital, error) {
	var dbModel models.HospitalModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", hospitalID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainHospital.ErrHospitalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}

	return toHospitalEntity(&dbModel), nil
}

func (r *HospitalRepository) GetByEmail(ctx context.Context, email string) (*domainHospital.Hospital, error) {
	var dbModel models.HospitalModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainHospital.ErrHospitalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hospital by email: %w", err)
	}

	return toHospitalEntity(&dbModel), nil
}

func (r *HospitalRepository) Update(ctx context.Context, h *domainHospital.Hospital) error {
	h.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.HospitalModel{}).
		Where("id = ?", h.ID).
		Updates(map[string]interface{}{
			"name":         h.Name,
			"location":     h.Location,
			"contact_info": h.ContactInfo,
			"updated_at":   h.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update hospital: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainHospital.ErrHospitalNotFound
	}

	return nil
}

func (r *HospitalRepository) UpdatePasswordHash(ctx context.Context, hospitalID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.HospitalModel{}).
		Where("id = ?", hospitalID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update hospital password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainHospital.ErrHospitalNotFound
	}

	return nil
}

// Verify flips verified to true. Re-verifying is a no-op success, so the
// affected-rows count is not checked against the already-verified case.
func (r *HospitalRepository) Verify(ctx context.Context, hospitalID uuid.UUID) error {
	var dbModel models.HospitalModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", hospitalID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainHospital.ErrHospitalNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get hospital: %w", err)
	}

	if dbModel.Verified {
		return nil
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.HospitalModel{}).
		Where("id = ?", hospitalID).
		Updates(map[string]interface{}{
			"verified":   true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to verify hospital: %w", result.Error)
	}

	return nil
}

func toHospitalModel(h *domainHospital.Hospital) *models.HospitalModel {
	return &models.HospitalModel{
		ID:             h.ID,
		Name:           h.Name,
		Location:       h.Location,
		License:        h.License,
		Email:          h.Email,
		PasswordHashed: h.PasswordHashed,
		Verified:       h.Verified,
		ContactInfo:    h.ContactInfo,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func toHospitalEntity(m *models.HospitalModel) *domainHospital.Hospital {
	return &domainHospital.Hospital{
		ID:             m.ID,
		Name:           m.Name,
		Location:       m.Location,
		License:        m.License,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Verified:       m.Verified,
		ContactInfo:    m.ContactInfo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
