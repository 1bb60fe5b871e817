package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainRequest "github.com/Joshua4-0p/blood-donation-app/internal/domain/request"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
)

type RequestRepository struct {
	db *DB
}

func NewRequestRepository(db *DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *domainRequest.Request) error {
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	if req.Urgency == "" {
		req.Urgency = domainRequest.UrgencyMedium
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	dbModel := toRequestModel(req)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.ID = dbModel.ID
	req.CreatedAt = dbModel.CreatedAt
	req.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*domainRequest.Request, error) {
	var dbModel models.RequestModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", requestID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainRequest.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return toRequestEntity(&dbModel), nil
}

func (r *RequestRepository) List(ctx context.Context, skip, limit int) ([]*domainRequest.Request, error) {
	var dbModels []models.RequestModel
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return toRequestEntities(dbModels), nil
}

func (r *RequestRepository) Update(ctx context.Context, req *domainRequest.Request) error {
	req.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.RequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"blood_type":     req.BloodType.String(),
			"quantity":       req.Quantity,
			"urgency":        req.Urgency.String(),
			"location":       req.Location,
			"medical_reason": req.MedicalReason,
			"updated_at":     req.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRequest.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, requestID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", requestID).
		Delete(&models.RequestModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRequest.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domainRequest.Request, error) {
	var dbModels []models.RequestModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by user: %w", err)
	}

	return toRequestEntities(dbModels), nil
}

func (r *RequestRepository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domainRequest.Request, error) {
	var dbModels []models.RequestModel
	err := r.db.DB.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by hospital: %w", err)
	}

	return toRequestEntities(dbModels), nil
}

func toRequestModel(req *domainRequest.Request) *models.RequestModel {
	return &models.RequestModel{
		ID:            req.ID,
		UserID:        req.UserID,
		HospitalID:    req.HospitalID,
		BloodType:     req.BloodType.String(),
		Quantity:      req.Quantity,
		Urgency:       req.Urgency.String(),
		Location:      req.Location,
		MedicalReason: req.MedicalReason,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toRequestEntity(m *models.RequestModel) *domainRequest.Request {
	bloodType, err := blood.ParseType(m.BloodType)
	if err != nil {
		bloodType = blood.TypeUnknown
	}
	urgency, err := domainRequest.ParseUrgency(m.Urgency)
	if err != nil {
		urgency = domainRequest.UrgencyMedium
	}

	return &domainRequest.Request{
		ID:            m.ID,
		UserID:        m.UserID,
		HospitalID:    m.HospitalID,
		BloodType:     bloodType,
		Quantity:      m.Quantity,
		Urgency:       urgency,
		Location:      m.Location,
		MedicalReason: m.MedicalReason,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRequestEntities(dbModels []models.RequestModel) []*domainRequest.Request {
	requests := make([]*domainRequest.Request, 0, len(dbModels))
	for i := range dbModels {
		requests = append(requests, toRequestEntity(&dbModels[i]))
	}
	return requests
}
