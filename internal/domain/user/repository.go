package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user persistence operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
