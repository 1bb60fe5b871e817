package donation

import "errors"

var (
	ErrDonationNotFound        = errors.New("donation not found")
	ErrInvalidStatus           = errors.New("invalid donation status")
	ErrInvalidStatusTransition = errors.New("invalid donation status transition")
	ErrDonationDeferred        = errors.New("donation is deferred")
)
