package auth_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	domainAuth "github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	authUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/auth"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newService() (*authUsecase.Service, *memoryUserRepo, *memoryHospitalRepo, *memoryResetRepo) {
	userRepo := &memoryUserRepo{users: map[string]*domainUser.User{}}
	hospitalRepo := &memoryHospitalRepo{hospitals: map[string]*domainHospital.Hospital{}}
	resetRepo := &memoryResetRepo{
		resets:       map[string]*domainAuth.PasswordReset{},
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
	}
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiryMinutes: 60}}
	return authUsecase.NewService(userRepo, hospitalRepo, resetRepo, cfg), userRepo, hospitalRepo, resetRepo
}

func TestRegisterUserIssuesToken(t *testing.T) {
	service, _, _, _ := newService()

	resp, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:      "Alice Uwase",
		Email:     "alice@example.com",
		Password:  "Str0ngPass",
		BloodType: "O+",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "user", resp.Role)
	require.NotNil(t, resp.User)
	require.Equal(t, "O+", resp.User.BloodType)
	require.Nil(t, resp.Hospital)

	claims, err := utils.ValidateToken(resp.AccessToken, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
}

func TestRegisterUserDefaultsUnknownBloodType(t *testing.T) {
	service, _, _, _ := newService()

	resp, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Bob Mugisha",
		Email:    "bob@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	require.Equal(t, "Unknown", resp.User.BloodType)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	service, _, _, _ := newService()

	req := &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	}
	_, err := service.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	_, err = service.RegisterUser(context.Background(), req)
	require.ErrorIs(t, err, appErrors.ErrEmailAlreadyUsed)
}

func TestRegisterHospitalStartsUnverified(t *testing.T) {
	service, _, _, _ := newService()

	resp, err := service.RegisterHospital(context.Background(), &authUsecase.RegisterHospitalRequest{
		Name:     "King Faisal Hospital",
		Location: "Kigali",
		License:  "RW-HOSP-001",
		Email:    "kfh@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	require.Equal(t, "hospital", resp.Role)
	require.NotNil(t, resp.Hospital)
	require.False(t, resp.Hospital.Verified)
	require.Nil(t, resp.User)
}

func TestRegisterHospitalDuplicateLicense(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.RegisterHospital(context.Background(), &authUsecase.RegisterHospitalRequest{
		Name:     "King Faisal Hospital",
		Location: "Kigali",
		License:  "RW-HOSP-001",
		Email:    "kfh@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	_, err = service.RegisterHospital(context.Background(), &authUsecase.RegisterHospitalRequest{
		Name:     "CHUK",
		Location: "Kigali",
		License:  "RW-HOSP-001",
		Email:    "chuk@example.com",
		Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, appErrors.ErrLicenseAlreadyUsed)
}

func TestLoginUser(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &authUsecase.LoginRequest{
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	require.Equal(t, "user", resp.Role)
	require.NotNil(t, resp.User)
}

func TestLoginFallsBackToHospital(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.RegisterHospital(context.Background(), &authUsecase.RegisterHospitalRequest{
		Name:     "King Faisal Hospital",
		Location: "Kigali",
		License:  "RW-HOSP-001",
		Email:    "kfh@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &authUsecase.LoginRequest{
		Email:    "kfh@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	require.Equal(t, "hospital", resp.Role)
	require.NotNil(t, resp.Hospital)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &authUsecase.LoginRequest{
		Email:    "alice@example.com",
		Password: "WrongPass1",
	})
	require.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.Login(context.Background(), &authUsecase.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	service, _, _, resetRepo := newService()

	reset, err := service.ForgotPassword(context.Background(), &authUsecase.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	require.NoError(t, err)
	require.Nil(t, reset)
	require.Empty(t, resetRepo.resets)
}

func TestForgotPasswordBindsUserOwner(t *testing.T) {
	service, userRepo, _, _ := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	reset, err := service.ForgotPassword(context.Background(), &authUsecase.ForgotPasswordRequest{
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, reset)
	require.NoError(t, reset.Validate())
	require.NotNil(t, reset.UserID)
	require.Equal(t, userRepo.users["alice@example.com"].ID, *reset.UserID)
	require.Nil(t, reset.HospitalID)
	require.NotEmpty(t, reset.Token)
	require.True(t, reset.ExpiresAt.After(time.Now()))
}

func TestResetPasswordRoundTrip(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	reset, err := service.ForgotPassword(context.Background(), &authUsecase.ForgotPasswordRequest{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	err = service.ResetPassword(context.Background(), &authUsecase.ResetPasswordRequest{
		Token:       reset.Token,
		NewPassword: "N3wStrongPass",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &authUsecase.LoginRequest{
		Email:    "alice@example.com",
		Password: "N3wStrongPass",
	})
	require.NoError(t, err)

	// The token is single use.
	err = service.ResetPassword(context.Background(), &authUsecase.ResetPasswordRequest{
		Token:       reset.Token,
		NewPassword: "An0therPass",
	})
	require.ErrorIs(t, err, appErrors.ErrResetTokenNotFound)
}

func TestResetPasswordExpiredTokenIsDeleted(t *testing.T) {
	service, _, _, resetRepo := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	reset, err := service.ForgotPassword(context.Background(), &authUsecase.ForgotPasswordRequest{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	resetRepo.resets[reset.Token].ExpiresAt = time.Now().Add(-time.Minute)

	err = service.ResetPassword(context.Background(), &authUsecase.ResetPasswordRequest{
		Token:       reset.Token,
		NewPassword: "N3wStrongPass",
	})
	require.ErrorIs(t, err, appErrors.ErrResetTokenExpired)
	require.Empty(t, resetRepo.resets)
}

func TestResetPasswordWeakPasswordRejected(t *testing.T) {
	service, _, _, _ := newService()

	err := service.ResetPassword(context.Background(), &authUsecase.ResetPasswordRequest{
		Token:       uuid.NewString(),
		NewPassword: "alllowercase",
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "WEAK_PASSWORD", appErr.Code)
}

func TestResolvePrincipal(t *testing.T) {
	service, userRepo, _, _ := newService()

	_, err := service.RegisterUser(context.Background(), &authUsecase.RegisterUserRequest{
		Name:     "Alice Uwase",
		Email:    "alice@example.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	principal, err := service.ResolvePrincipal(context.Background(), "alice@example.com", "user")
	require.NoError(t, err)
	require.Equal(t, domainAuth.RoleUser, principal.Role())
	require.NotNil(t, principal.UserID())
	require.Equal(t, userRepo.users["alice@example.com"].ID, *principal.UserID())

	_, err = service.ResolvePrincipal(context.Background(), "alice@example.com", "hospital")
	require.ErrorIs(t, err, appErrors.ErrInvalidToken)

	_, err = service.ResolvePrincipal(context.Background(), "alice@example.com", "admin")
	require.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

type memoryUserRepo struct {
	users map[string]*domainUser.User
}

func (m *memoryUserRepo) Create(ctx context.Context, u *domainUser.User) error {
	if _, ok := m.users[u.Email]; ok {
		return domainUser.ErrUserAlreadyExists
	}
	u.ID = uuid.New()
	m.users[u.Email] = u
	return nil
}

func (m *memoryUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

func (m *memoryUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	m.users[u.Email] = u
	return nil
}

func (m *memoryUserRepo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHashed = passwordHash
			return nil
		}
	}
	return domainUser.ErrUserNotFound
}

type memoryHospitalRepo struct {
	hospitals map[string]*domainHospital.Hospital
}

func (m *memoryHospitalRepo) Create(ctx context.Context, h *domainHospital.Hospital) error {
	if _, ok := m.hospitals[h.Email]; ok {
		return domainHospital.ErrHospitalAlreadyExists
	}
	for _, other := range m.hospitals {
		if other.License == h.License {
			return domainHospital.ErrHospitalAlreadyExists
		}
	}
	h.ID = uuid.New()
	m.hospitals[h.Email] = h
	return nil
}

func (m *memoryHospitalRepo) GetByID(ctx context.Context, hospitalID uuid.UUID) (*domainHospital.Hospital, error) {
	for _, h := range m.hospitals {
		if h.ID == hospitalID {
			return h, nil
		}
	}
	return nil, domainHospital.ErrHospitalNotFound
}

func (m *memoryHospitalRepo) GetByEmail(ctx context.Context, email string) (*domainHospital.Hospital, error) {
	if h, ok := m.hospitals[email]; ok {
		return h, nil
	}
	return nil, domainHospital.ErrHospitalNotFound
}

func (m *memoryHospitalRepo) Update(ctx context.Context, h *domainHospital.Hospital) error {
	m.hospitals[h.Email] = h
	return nil
}

func (m *memoryHospitalRepo) UpdatePasswordHash(ctx context.Context, hospitalID uuid.UUID, passwordHash string) error {
	for _, h := range m.hospitals {
		if h.ID == hospitalID {
			h.PasswordHashed = passwordHash
			return nil
		}
	}
	return domainHospital.ErrHospitalNotFound
}

func (m *memoryHospitalRepo) Verify(ctx context.Context, hospitalID uuid.UUID) error {
	for _, h := range m.hospitals {
		if h.ID == hospitalID {
			h.Verified = true
			return nil
		}
	}
	return domainHospital.ErrHospitalNotFound
}

type memoryResetRepo struct {
	resets       map[string]*domainAuth.PasswordReset
	userRepo     *memoryUserRepo
	hospitalRepo *memoryHospitalRepo
}

func (m *memoryResetRepo) Create(ctx context.Context, reset *domainAuth.PasswordReset) error {
	if err := reset.Validate(); err != nil {
		return err
	}
	reset.ID = uuid.New()
	m.resets[reset.Token] = reset
	return nil
}

func (m *memoryResetRepo) GetByToken(ctx context.Context, token string) (*domainAuth.PasswordReset, error) {
	if reset, ok := m.resets[token]; ok {
		return reset, nil
	}
	return nil, appErrors.ErrResetTokenNotFound
}

func (m *memoryResetRepo) Delete(ctx context.Context, token string) error {
	delete(m.resets, token)
	return nil
}

func (m *memoryResetRepo) Consume(ctx context.Context, reset *domainAuth.PasswordReset, passwordHash string) error {
	if _, ok := m.resets[reset.Token]; !ok {
		return appErrors.ErrResetTokenNotFound
	}
	if m.userRepo != nil && reset.UserID != nil {
		if err := m.userRepo.UpdatePasswordHash(ctx, *reset.UserID, passwordHash); err != nil {
			return err
		}
	}
	if m.hospitalRepo != nil && reset.HospitalID != nil {
		if err := m.hospitalRepo.UpdatePasswordHash(ctx, *reset.HospitalID, passwordHash); err != nil {
			return err
		}
	}
	delete(m.resets, reset.Token)
	return nil
}
