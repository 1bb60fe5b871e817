package request

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainRequest "github.com/Joshua4-0p/blood-donation-app/internal/domain/request"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

const defaultListLimit = 100

// Service implements blood request use cases
type Service struct {
	requestRepo domainRequest.Repository
}

func NewService(requestRepo domainRequest.Repository) *Service {
	return &Service{requestRepo: requestRepo}
}

// Create binds the new request to exactly one creator taken from the
// authenticated principal.
func (s *Service) Create(ctx context.Context, principal domainAuth.Principal, req *CreateRequest) (*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	bloodType, err := blood.ParseType(req.BloodType)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	urgency := domainRequest.UrgencyMedium
	if req.Urgency != "" {
		urgency, err = domainRequest.ParseUrgency(req.Urgency)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	r := &domainRequest.Request{
		UserID:        principal.UserID(),
		HospitalID:    principal.HospitalID(),
		BloodType:     bloodType,
		Quantity:      quantity,
		Urgency:       urgency,
		Location:      req.Location,
		MedicalReason: req.MedicalReason,
	}

	if err := s.requestRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.Info("Blood request created",
		zap.String("request_id", r.ID.String()),
		zap.String("blood_type", r.BloodType.String()),
		zap.String("urgency", r.Urgency.String()),
		zap.String("event", "request_created"),
	)

	return ToRequestResponse(r), nil
}

func (s *Service) List(ctx context.Context, filter *ListFilter) ([]*RequestResponse, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	requests, err := s.requestRepo.List(ctx, filter.Skip, limit)
	if err != nil {
		return nil, err
	}

	return ToRequestResponses(requests), nil
}

func (s *Service) Get(ctx context.Context, requestID uuid.UUID) (*RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return ToRequestResponse(r), nil
}

// Update applies a partial update; only the creator may update.
func (s *Service) Update(ctx context.Context, requestID uuid.UUID, principal domainAuth.Principal, req *UpdateRequest) (*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(principal.UserID(), principal.HospitalID()) {
		return nil, domainRequest.ErrNotRequestOwner
	}

	if req.BloodType != nil {
		bloodType, err := blood.ParseType(*req.BloodType)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
		r.BloodType = bloodType
	}
	if req.Quantity != nil {
		r.Quantity = *req.Quantity
	}
	if req.Urgency != nil {
		urgency, err := domainRequest.ParseUrgency(*req.Urgency)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
		r.Urgency = urgency
	}
	if req.Location != nil {
		r.Location = *req.Location
	}
	if req.MedicalReason != nil {
		r.MedicalReason = req.MedicalReason
	}

	if err := s.requestRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	logger.Info("Blood request updated",
		zap.String("request_id", r.ID.String()),
		zap.String("event", "request_updated"),
	)

	return ToRequestResponse(r), nil
}

// Delete removes the request; only the creator may delete.
func (s *Service) Delete(ctx context.Context, requestID uuid.UUID, principal domainAuth.Principal) error {
	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !r.OwnedBy(principal.UserID(), principal.HospitalID()) {
		return domainRequest.ErrNotRequestOwner
	}

	if err := s.requestRepo.Delete(ctx, requestID); err != nil {
		return err
	}

	logger.Info("Blood request deleted",
		zap.String("request_id", requestID.String()),
		zap.String("event", "request_deleted"),
	)

	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RequestResponse, error) {
	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToRequestResponses(requests), nil
}

func (s *Service) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*RequestResponse, error) {
	requests, err := s.requestRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return ToRequestResponses(requests), nil
}
