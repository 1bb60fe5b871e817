package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres/models"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	if u.BloodType == "" {
		u.BloodType = blood.TypeUnknown
	}

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return domainUser.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) Update(ctx context.Context, u *domainUser.User) error {
	u.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":         u.Name,
			"age":          u.Age,
			"gender":       u.Gender,
			"location":     u.Location,
			"blood_type":   bloodTypeColumn(u.BloodType),
			"contact_info": u.ContactInfo,
			"updated_at":   u.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

func toUserModel(u *domainUser.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		PasswordHashed: u.PasswordHashed,
		Age:            u.Age,
		Gender:         u.Gender,
		Location:       u.Location,
		BloodType:      bloodTypeColumn(u.BloodType),
		ContactInfo:    u.ContactInfo,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Age:            m.Age,
		Gender:         m.Gender,
		Location:       m.Location,
		BloodType:      bloodTypeFromColumn(m.BloodType),
		ContactInfo:    m.ContactInfo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func bloodTypeColumn(t blood.Type) *string {
	if !t.Valid() {
		return nil
	}
	s := t.String()
	return &s
}

func bloodTypeFromColumn(s *string) blood.Type {
	if s == nil {
		return blood.TypeUnknown
	}
	t, err := blood.ParseType(*s)
	if err != nil {
		return blood.TypeUnknown
	}
	return t
}
