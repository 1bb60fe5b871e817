package hospital

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for hospital persistence operations
type Repository interface {
	Create(ctx context.Context, hospital *Hospital) error
	GetByID(ctx context.Context, hospitalID uuid.UUID) (*Hospital, error)
	GetByEmail(ctx context.Context, email string) (*Hospital, error)
	Update(ctx context.Context, hospital *Hospital) error
	UpdatePasswordHash(ctx context.Context, hospitalID uuid.UUID, passwordHash string) error

	// Verify sets verified=true. Verifying an already verified hospital is a
	// no-op success.
	Verify(ctx context.Context, hospitalID uuid.UUID) error
}
