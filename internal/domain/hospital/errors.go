package hospital

import "errors"

var (
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrHospitalAlreadyExists = errors.New("hospital already exists")
	ErrHospitalNotVerified   = errors.New("hospital is not verified")
)
