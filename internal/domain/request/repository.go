package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for request persistence operations
type Repository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, requestID uuid.UUID) (*Request, error)
	List(ctx context.Context, skip, limit int) ([]*Request, error)
	Update(ctx context.Context, request *Request) error
	Delete(ctx context.Context, requestID uuid.UUID) error

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Request, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Request, error)
}
