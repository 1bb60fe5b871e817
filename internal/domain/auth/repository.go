package auth

import "context"

// PasswordResetRepository defines persistence for password reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *PasswordReset) error
	GetByToken(ctx context.Context, token string) (*PasswordReset, error)
	Delete(ctx context.Context, token string) error

	// Consume atomically rewrites the owner's password hash and deletes the
	// token in a single transaction.
	Consume(ctx context.Context, reset *PasswordReset, passwordHash string) error
}
