package donation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainDonation "github.com/Joshua4-0p/blood-donation-app/internal/domain/donation"
	domainRequest "github.com/Joshua4-0p/blood-donation-app/internal/domain/request"
	"github.com/Joshua4-0p/blood-donation-app/internal/eligibility"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

const defaultSearchLimit = 100

// Service implements the donation lifecycle: eligibility-gated creation,
// availability search, status transitions and request fulfillment.
type Service struct {
	donationRepo domainDonation.Repository
	requestRepo  domainRequest.Repository
	evaluator    eligibility.Evaluator
}

func NewService(
	donationRepo domainDonation.Repository,
	requestRepo domainRequest.Repository,
	evaluator eligibility.Evaluator,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		evaluator:    evaluator,
	}
}

// Create evaluates the donor's eligibility and records the donation with the
// verdict-determined initial status. The evaluator runs before any write, so
// a hard evaluator failure leaves no partial record behind.
func (s *Service) Create(ctx context.Context, donorID uuid.UUID, req *CreateRequest) (*DonationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// The last-donation date comes from the ledger, never from the caller.
	lastCompleted, err := s.donationRepo.LastCompletedAt(ctx, donorID)
	if err != nil {
		return nil, err
	}

	verdict, err := s.evaluator.Evaluate(ctx, req.HealthQuestionnaire, lastCompleted)
	if err != nil {
		return nil, err
	}

	status := domainDonation.StatusDeferred
	if verdict.Eligible {
		status = domainDonation.StatusAvailable
	}
	reason := verdict.Reason

	d := &domainDonation.Donation{
		UserID:              donorID,
		Status:              status,
		HealthQuestionnaire: req.HealthQuestionnaire,
		EligibilityReason:   &reason,
		Location:            req.Location,
	}

	if err := s.donationRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Donation created",
		zap.String("donation_id", d.ID.String()),
		zap.String("donor_id", donorID.String()),
		zap.String("status", d.Status.String()),
		zap.Bool("eligible", verdict.Eligible),
		zap.String("event", "donation_created"),
	)

	return ToDonationResponse(d), nil
}

func (s *Service) Get(ctx context.Context, donationID uuid.UUID) (*DonationResponse, error) {
	d, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	return ToDonationResponse(d), nil
}

// Search lists available donations, optionally narrowed by donor blood type
// and donor location.
func (s *Service) Search(ctx context.Context, filter *SearchFilter) ([]*DonationResponse, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	domainFilter := &domainDonation.SearchFilter{
		Location: filter.Location,
		Skip:     filter.Skip,
		Limit:    filter.Limit,
	}
	if domainFilter.Limit == 0 {
		domainFilter.Limit = defaultSearchLimit
	}
	if filter.BloodType != nil {
		bloodType, err := blood.ParseType(*filter.BloodType)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
		domainFilter.BloodType = &bloodType
	}

	donations, err := s.donationRepo.Search(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToDonationResponses(donations), nil
}

// Update applies a partial update and re-derives the fulfillment linkage.
// A transition to COMPLETED stamps completed_at and attributes the acting
// hospital. Whenever the donation carries a request id, the linked request's
// owning user is re-derived into recipient_user_id, even on unrelated updates.
func (s *Service) Update(ctx context.Context, donationID uuid.UUID, principal domainAuth.Principal, req *UpdateRequest) (*DonationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		newStatus, err := domainDonation.ParseStatus(*req.Status)
		if err != nil {
			return nil, domainDonation.ErrInvalidStatus
		}
		if !domainDonation.CanTransition(d.Status, newStatus) {
			if d.Status == domainDonation.StatusDeferred {
				return nil, domainDonation.ErrDonationDeferred
			}
			return nil, domainDonation.ErrInvalidStatusTransition
		}

		if newStatus == domainDonation.StatusCompleted && d.Status != domainDonation.StatusCompleted {
			now := time.Now()
			d.CompletedAt = &now
			if d.HospitalID == nil {
				d.HospitalID = principal.HospitalID()
			}
		}
		d.Status = newStatus
	}

	if req.RequestID != nil {
		d.RequestID = req.RequestID
	}
	if req.Location != nil {
		d.Location = req.Location
	}

	// Fulfillment linkage: unconditionally re-derived on every update.
	if d.RequestID != nil {
		linked, err := s.requestRepo.GetByID(ctx, *d.RequestID)
		if err != nil {
			return nil, err
		}
		d.RecipientUserID = linked.UserID
	}

	if err := s.donationRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Donation updated",
		zap.String("donation_id", d.ID.String()),
		zap.String("status", d.Status.String()),
		zap.String("event", "donation_updated"),
	)

	return ToDonationResponse(d), nil
}

func (s *Service) ListCompletedByDonor(ctx context.Context, userID uuid.UUID) ([]*DonationResponse, error) {
	donations, err := s.donationRepo.ListCompletedByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToDonationResponses(donations), nil
}

func (s *Service) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*DonationResponse, error) {
	donations, err := s.donationRepo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToDonationResponses(donations), nil
}

func (s *Service) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*DonationResponse, error) {
	donations, err := s.donationRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return ToDonationResponses(donations), nil
}
