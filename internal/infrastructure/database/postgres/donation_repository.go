package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainDonation "github.com/Joshua4-0p/blood-donation-app/internal/domain/donation"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
)

type DonationRepository struct {
	db *DB
}

func NewDonationRepository(db *DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, d *domainDonation.Donation) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	dbModel, err := toDonationModel(d)
	if err != nil {
		return err
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	d.ID = dbModel.ID
	d.CreatedAt = dbModel.CreatedAt
	d.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *DonationRepository) GetByID(ctx context.Context, donationID uuid.UUID) (*domainDonation.Donation, error) {
	var dbModel models.DonationModel
	err := r.db.DB.WithContext(ctx).
		Preload("User").
		Where("id = ?", donationID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDonation.ErrDonationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	return toDonationEntity(&dbModel), nil
}

// Update writes the full mutable row in a single statement, so partial update
// semantics are decided by the caller loading, mutating and writing back.
func (r *DonationRepository) Update(ctx context.Context, d *domainDonation.Donation) error {
	d.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.DonationModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"hospital_id":       d.HospitalID,
			"request_id":        d.RequestID,
			"recipient_user_id": d.RecipientUserID,
			"status":            d.Status.String(),
			"location":          d.Location,
			"completed_at":      d.CompletedAt,
			"updated_at":        d.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update donation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDonation.ErrDonationNotFound
	}

	return nil
}

func (r *DonationRepository) Search(ctx context.Context, filter *domainDonation.SearchFilter) ([]*domainDonation.Donation, error) {
	var dbModels []models.DonationModel

	db := r.db.DB.WithContext(ctx).
		Model(&models.DonationModel{}).
		Preload("User").
		Joins("JOIN users ON users.id = donations.user_id").
		Where("donations.status = ?", domainDonation.StatusAvailable.String())

	if filter.BloodType != nil {
		db = db.Where("users.blood_type = ?", filter.BloodType.String())
	}
	if filter.Location != nil {
		db = db.Where("users.location ILIKE ?", "%"+*filter.Location+"%")
	}

	err := db.
		Order("users.blood_type DESC NULLS LAST").
		Order("donations.created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search donations: %w", err)
	}

	return toDonationEntities(dbModels), nil
}

func (r *DonationRepository) LastCompletedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var dbModel models.DonationModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domainDonation.StatusCompleted.String()).
		Order("completed_at DESC").
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last completed donation: %w", err)
	}

	return dbModel.CompletedAt, nil
}

func (r *DonationRepository) ListCompletedByDonor(ctx context.Context, userID uuid.UUID) ([]*domainDonation.Donation, error) {
	var dbModels []models.DonationModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domainDonation.StatusCompleted.String()).
		Order("completed_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list donations by donor: %w", err)
	}

	return toDonationEntities(dbModels), nil
}

func (r *DonationRepository) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*domainDonation.Donation, error) {
	var dbModels []models.DonationModel
	err := r.db.DB.WithContext(ctx).
		Where("recipient_user_id = ?", userID).
		Order("completed_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list donations by recipient: %w", err)
	}

	return toDonationEntities(dbModels), nil
}

func (r *DonationRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domainDonation.Donation, error) {
	var dbModels []models.DonationModel
	err := r.db.DB.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("completed_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list donations by hospital: %w", err)
	}

	return toDonationEntities(dbModels), nil
}

func toDonationModel(d *domainDonation.Donation) (*models.DonationModel, error) {
	var questionnaire []byte
	if d.HealthQuestionnaire != nil {
		raw, err := json.Marshal(d.HealthQuestionnaire)
		if err != nil {
			return nil, fmt.Errorf("failed to encode questionnaire: %w", err)
		}
		questionnaire = raw
	}

	return &models.DonationModel{
		ID:                  d.ID,
		UserID:              d.UserID,
		HospitalID:          d.HospitalID,
		RequestID:           d.RequestID,
		RecipientUserID:     d.RecipientUserID,
		Status:              d.Status.String(),
		HealthQuestionnaire: questionnaire,
		EligibilityReason:   d.EligibilityReason,
		Location:            d.Location,
		CompletedAt:         d.CompletedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}, nil
}

func toDonationEntity(m *models.DonationModel) *domainDonation.Donation {
	status, err := domainDonation.ParseStatus(m.Status)
	if err != nil {
		status = domainDonation.StatusAvailable
	}

	var questionnaire map[string]interface{}
	if len(m.HealthQuestionnaire) > 0 {
		_ = json.Unmarshal(m.HealthQuestionnaire, &questionnaire)
	}

	d := &domainDonation.Donation{
		ID:                  m.ID,
		UserID:              m.UserID,
		HospitalID:          m.HospitalID,
		RequestID:           m.RequestID,
		RecipientUserID:     m.RecipientUserID,
		Status:              status,
		HealthQuestionnaire: questionnaire,
		EligibilityReason:   m.EligibilityReason,
		Location:            m.Location,
		CompletedAt:         m.CompletedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}

	if m.User != nil {
		bt := bloodTypeFromColumn(m.User.BloodType)
		d.DonorBloodType = &bt
	}

	return d
}

func toDonationEntities(dbModels []models.DonationModel) []*domainDonation.Donation {
	donations := make([]*domainDonation.Donation, 0, len(dbModels))
	for i := range dbModels {
		donations = append(donations, toDonationEntity(&dbModels[i]))
	}
	return donations
}
