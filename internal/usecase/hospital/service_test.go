package hospital_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	hospitalUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/hospital"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func seededService() (*hospitalUsecase.Service, *domainHospital.Hospital) {
	existing := &domainHospital.Hospital{
		ID:       uuid.New(),
		Name:     "King Faisal Hospital",
		Location: "Kigali",
		License:  "RW-HOSP-001",
		Email:    "kfh@example.com",
	}
	return hospitalUsecase.NewService(&memoryHospitalRepo{hospital: existing}), existing
}

func TestGetHospital(t *testing.T) {
	service, existing := seededService()

	resp, err := service.GetHospital(context.Background(), existing.ID)
	require.NoError(t, err)
	require.Equal(t, existing.ID, resp.ID)
	require.False(t, resp.Verified)

	_, err = service.GetHospital(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainHospital.ErrHospitalNotFound)
}

func TestUpdateProfileKeepsLicenseAndEmail(t *testing.T) {
	service, existing := seededService()

	name := "King Faisal Teaching Hospital"
	resp, err := service.UpdateProfile(context.Background(), existing.ID, existing.ID, &hospitalUsecase.UpdateProfileRequest{
		Name: &name,
	})
	require.NoError(t, err)
	require.Equal(t, "King Faisal Teaching Hospital", resp.Name)
	require.Equal(t, "RW-HOSP-001", resp.License)
	require.Equal(t, "kfh@example.com", resp.Email)
}

func TestUpdateProfileOtherCallerForbidden(t *testing.T) {
	service, existing := seededService()

	name := "Mallory Clinic"
	_, err := service.UpdateProfile(context.Background(), existing.ID, uuid.New(), &hospitalUsecase.UpdateProfileRequest{
		Name: &name,
	})
	require.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestVerifyIsIdempotent(t *testing.T) {
	service, existing := seededService()

	resp, err := service.Verify(context.Background(), existing.ID)
	require.NoError(t, err)
	require.True(t, resp.Verified)

	resp, err = service.Verify(context.Background(), existing.ID)
	require.NoError(t, err)
	require.True(t, resp.Verified)

	_, err = service.Verify(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainHospital.ErrHospitalNotFound)
}

type memoryHospitalRepo struct {
	hospital *domainHospital.Hospital
}

func (m *memoryHospitalRepo) Create(ctx context.Context, h *domainHospital.Hospital) error {
	m.hospital = h
	return nil
}

func (m *memoryHospitalRepo) GetByID(ctx context.Context, hospitalID uuid.UUID) (*domainHospital.Hospital, error) {
	if m.hospital == nil || m.hospital.ID != hospitalID {
		return nil, domainHospital.ErrHospitalNotFound
	}
	copied := *m.hospital
	return &copied, nil
}

func (m *memoryHospitalRepo) GetByEmail(ctx context.Context, email string) (*domainHospital.Hospital, error) {
	if m.hospital == nil || m.hospital.Email != email {
		return nil, domainHospital.ErrHospitalNotFound
	}
	return m.hospital, nil
}

func (m *memoryHospitalRepo) Update(ctx context.Context, h *domainHospital.Hospital) error {
	if m.hospital == nil || m.hospital.ID != h.ID {
		return domainHospital.ErrHospitalNotFound
	}
	m.hospital = h
	return nil
}

func (m *memoryHospitalRepo) UpdatePasswordHash(ctx context.Context, hospitalID uuid.UUID, passwordHash string) error {
	if m.hospital == nil || m.hospital.ID != hospitalID {
		return domainHospital.ErrHospitalNotFound
	}
	m.hospital.PasswordHashed = passwordHash
	return nil
}

func (m *memoryHospitalRepo) Verify(ctx context.Context, hospitalID uuid.UUID) error {
	if m.hospital == nil || m.hospital.ID != hospitalID {
		return domainHospital.ErrHospitalNotFound
	}
	m.hospital.Verified = true
	return nil
}
