package hospital

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

// Service implements hospital profile and verification use cases
type Service struct {
	hospitalRepo domainHospital.Repository
}

func NewService(hospitalRepo domainHospital.Repository) *Service {
	return &Service{hospitalRepo: hospitalRepo}
}

func (s *Service) GetHospital(ctx context.Context, hospitalID uuid.UUID) (*HospitalResponse, error) {
	h, err := s.hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return ToHospitalResponse(h), nil
}

// UpdateProfile applies a partial update; only the owner may update.
func (s *Service) UpdateProfile(ctx context.Context, hospitalID, callerID uuid.UUID, req *UpdateProfileRequest) (*HospitalResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if hospitalID != callerID {
		return nil, appErrors.ErrForbidden
	}

	h, err := s.hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Location != nil {
		h.Location = *req.Location
	}
	if req.ContactInfo != nil {
		h.ContactInfo = req.ContactInfo
	}

	if err := s.hospitalRepo.Update(ctx, h); err != nil {
		return nil, err
	}

	logger.Info("Hospital profile updated",
		zap.String("hospital_id", h.ID.String()),
		zap.String("event", "hospital_profile_updated"),
	)

	return ToHospitalResponse(h), nil
}

// Verify marks the hospital as verified. Verifying twice is a no-op success.
func (s *Service) Verify(ctx context.Context, hospitalID uuid.UUID) (*HospitalResponse, error) {
	if err := s.hospitalRepo.Verify(ctx, hospitalID); err != nil {
		return nil, err
	}

	h, err := s.hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	logger.Info("Hospital verified",
		zap.String("hospital_id", h.ID.String()),
		zap.String("event", "hospital_verified"),
	)

	return ToHospitalResponse(h), nil
}
