package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	hospitalUC "github.com/Joshua4-0p/blood-donation-app/internal/usecase/hospital"
	userUC "github.com/Joshua4-0p/blood-donation-app/internal/usecase/user"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

const resetTokenTTL = time.Hour

// Service implements registration, login and password recovery for both
// account kinds.
type Service struct {
	userRepo     domainUser.Repository
	hospitalRepo domainHospital.Repository
	resetRepo    domainAuth.PasswordResetRepository
	config       *config.Config
}

func NewService(
	userRepo domainUser.Repository,
	hospitalRepo domainHospital.Repository,
	resetRepo domainAuth.PasswordResetRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		resetRepo:    resetRepo,
		config:       cfg,
	}
}

func (s *Service) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	bloodType := blood.TypeUnknown
	if req.BloodType != "" {
		parsed, err := blood.ParseType(req.BloodType)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
		}
		bloodType = parsed
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "user_registration_duplicate_email"),
		)
		return nil, appErrors.ErrEmailAlreadyUsed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Age:            req.Age,
		Gender:         req.Gender,
		Location:       req.Location,
		BloodType:      bloodType,
		ContactInfo:    req.ContactInfo,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyUsed
		}
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("event", "user_registered"),
	)

	return s.issueToken(u.Email, domainAuth.RoleUser, userUC.ToUserResponse(u), nil)
}

func (s *Service) RegisterHospital(ctx context.Context, req *RegisterHospitalRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.hospitalRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainHospital.ErrHospitalNotFound) {
		return nil, fmt.Errorf("failed to check existing hospital: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "hospital_registration_duplicate_email"),
		)
		return nil, appErrors.ErrEmailAlreadyUsed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	h := &domainHospital.Hospital{
		Name:           req.Name,
		Location:       req.Location,
		License:        req.License,
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Verified:       false,
		ContactInfo:    req.ContactInfo,
	}

	if err := s.hospitalRepo.Create(ctx, h); err != nil {
		if errors.Is(err, domainHospital.ErrHospitalAlreadyExists) {
			// The unique index on license or email fired; the email case was
			// pre-checked, so report the license.
			return nil, appErrors.ErrLicenseAlreadyUsed
		}
		return nil, err
	}

	logger.Info("Hospital registered",
		zap.String("hospital_id", h.ID.String()),
		zap.String("email", h.Email),
		zap.String("license", h.License),
		zap.String("event", "hospital_registered"),
	)

	return s.issueToken(h.Email, domainAuth.RoleHospital, nil, hospitalUC.ToHospitalResponse(h))
}

// Login resolves the email against users first, then hospitals.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, err
	}
	if u != nil {
		if !utils.CheckPassword(u.PasswordHashed, req.Password) {
			logger.Warn("Login attempt with invalid password",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_invalid_password"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}

		logger.Info("User logged in",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "login_success"),
		)
		return s.issueToken(u.Email, domainAuth.RoleUser, userUC.ToUserResponse(u), nil)
	}

	h, err := s.hospitalRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainHospital.ErrHospitalNotFound) {
			logger.Warn("Login attempt with unknown email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(h.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("email", req.Email),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	logger.Info("Hospital logged in",
		zap.String("hospital_id", h.ID.String()),
		zap.String("event", "login_success"),
	)
	return s.issueToken(h.Email, domainAuth.RoleHospital, nil, hospitalUC.ToHospitalResponse(h))
}

// ResolvePrincipal loads the account a validated token refers to.
func (s *Service) ResolvePrincipal(ctx context.Context, email string, role string) (domainAuth.Principal, error) {
	switch domainAuth.Role(role) {
	case domainAuth.RoleUser:
		u, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return domainAuth.Principal{}, appErrors.ErrInvalidToken
		}
		return domainAuth.UserPrincipal(u), nil
	case domainAuth.RoleHospital:
		h, err := s.hospitalRepo.GetByEmail(ctx, email)
		if err != nil {
			return domainAuth.Principal{}, appErrors.ErrInvalidToken
		}
		return domainAuth.HospitalPrincipal(h), nil
	default:
		return domainAuth.Principal{}, appErrors.ErrInvalidToken
	}
}

// ForgotPassword issues a single-use reset token bound to whichever account
// kind owns the email. The caller's response must not reveal whether the
// email exists.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) (*domainAuth.PasswordReset, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	var userID, hospitalID *uuid.UUID

	if req.AccountType == "" || req.AccountType == string(domainAuth.RoleUser) {
		if u, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
			id := u.ID
			userID = &id
		} else if !errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, err
		}
	}
	if userID == nil && (req.AccountType == "" || req.AccountType == string(domainAuth.RoleHospital)) {
		if h, err := s.hospitalRepo.GetByEmail(ctx, req.Email); err == nil {
			id := h.ID
			hospitalID = &id
		} else if !errors.Is(err, domainHospital.ErrHospitalNotFound) {
			return nil, err
		}
	}

	if userID == nil && hospitalID == nil {
		logger.Info("Password reset requested for unknown email",
			zap.String("email", req.Email),
			zap.String("event", "password_reset_unknown_email"),
		)
		return nil, nil
	}

	reset := &domainAuth.PasswordReset{
		UserID:     userID,
		HospitalID: hospitalID,
		Token:      uuid.NewString(),
		ExpiresAt:  time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return nil, err
	}

	logger.Info("Password reset token issued",
		zap.String("event", "password_reset_issued"),
	)

	return reset, nil
}

func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	reset, err := s.resetRepo.GetByToken(ctx, req.Token)
	if err != nil {
		return err
	}

	if reset.Expired(time.Now()) {
		// Expired tokens are not consumable; drop them on sight.
		_ = s.resetRepo.Delete(ctx, reset.Token)
		logger.Warn("Expired password reset token presented",
			zap.String("event", "password_reset_expired"),
		)
		return appErrors.ErrResetTokenExpired
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.resetRepo.Consume(ctx, reset, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		zap.String("event", "password_reset_completed"),
	)

	return nil
}

func (s *Service) issueToken(email string, role domainAuth.Role, u *userUC.UserResponse, h *hospitalUC.HospitalResponse) (*AuthResponse, error) {
	token, expiresAt, err := utils.GenerateToken(email, string(role), s.config.JWT.Secret, s.config.JWT.ExpiryMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Role:        string(role),
		User:        u,
		Hospital:    h,
	}, nil
}
