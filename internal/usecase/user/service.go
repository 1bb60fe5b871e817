package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

// Service implements user profile use cases
type Service struct {
	userRepo domainUser.Repository
}

func NewService(userRepo domainUser.Repository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// UpdateProfile applies a partial update: fields absent from the request stay
// untouched. Only the owner may update their profile.
func (s *Service) UpdateProfile(ctx context.Context, userID, callerID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if userID != callerID {
		return nil, appErrors.ErrForbidden
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Age != nil {
		u.Age = req.Age
	}
	if req.Gender != nil {
		u.Gender = req.Gender
	}
	if req.Location != nil {
		u.Location = req.Location
	}
	if req.BloodType != nil {
		bloodType, err := blood.ParseType(*req.BloodType)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
		u.BloodType = bloodType
	}
	if req.ContactInfo != nil {
		u.ContactInfo = req.ContactInfo
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User profile updated",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "user_profile_updated"),
	)

	return ToUserResponse(u), nil
}
