package request

import "errors"

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrNotRequestOwner = errors.New("request does not belong to caller")
)
