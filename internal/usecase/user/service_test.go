package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	userUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/user"
	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func seededService() (*userUsecase.Service, *domainUser.User) {
	existing := &domainUser.User{
		ID:        uuid.New(),
		Name:      "Alice Uwase",
		Email:     "alice@example.com",
		BloodType: blood.TypeUnknown,
	}
	return userUsecase.NewService(&memoryUserRepo{user: existing}), existing
}

func TestGetUser(t *testing.T) {
	service, existing := seededService()

	resp, err := service.GetUser(context.Background(), existing.ID)
	require.NoError(t, err)
	require.Equal(t, existing.ID, resp.ID)
	require.Equal(t, "Alice Uwase", resp.Name)

	_, err = service.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	service, existing := seededService()

	name := "Alice U."
	bloodType := "O-"
	resp, err := service.UpdateProfile(context.Background(), existing.ID, existing.ID, &userUsecase.UpdateProfileRequest{
		Name:      &name,
		BloodType: &bloodType,
	})
	require.NoError(t, err)
	require.Equal(t, "Alice U.", resp.Name)
	require.Equal(t, "O-", resp.BloodType)
	require.Equal(t, "alice@example.com", resp.Email)
	require.Nil(t, resp.Age)
}

func TestUpdateProfileOtherCallerForbidden(t *testing.T) {
	service, existing := seededService()

	name := "Mallory"
	_, err := service.UpdateProfile(context.Background(), existing.ID, uuid.New(), &userUsecase.UpdateProfileRequest{
		Name: &name,
	})
	require.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestUpdateProfileInvalidBloodType(t *testing.T) {
	service, existing := seededService()

	bloodType := "purple"
	_, err := service.UpdateProfile(context.Background(), existing.ID, existing.ID, &userUsecase.UpdateProfileRequest{
		BloodType: &bloodType,
	})
	require.Error(t, err)
}

type memoryUserRepo struct {
	user *domainUser.User
}

func (m *memoryUserRepo) Create(ctx context.Context, u *domainUser.User) error {
	m.user = u
	return nil
}

func (m *memoryUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	if m.user == nil || m.user.ID != userID {
		return nil, domainUser.ErrUserNotFound
	}
	copied := *m.user
	return &copied, nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if m.user == nil || m.user.Email != email {
		return nil, domainUser.ErrUserNotFound
	}
	return m.user, nil
}

func (m *memoryUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	if m.user == nil || m.user.ID != u.ID {
		return domainUser.ErrUserNotFound
	}
	m.user = u
	return nil
}

func (m *memoryUserRepo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	if m.user == nil || m.user.ID != userID {
		return domainUser.ErrUserNotFound
	}
	m.user.PasswordHashed = passwordHash
	return nil
}
