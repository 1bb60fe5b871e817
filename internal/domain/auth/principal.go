package auth

import (
	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
	"github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
)

// Role identifies which kind of account a credential belongs to.
type Role string

const (
	RoleUser     Role = "user"
	RoleHospital Role = "hospital"
)

// Principal is the authenticated caller: exactly one of the two cases is set,
// matching the role. Construct only through UserPrincipal / HospitalPrincipal.
type Principal struct {
	role     Role
	user     *user.User
	hospital *hospital.Hospital
}

func UserPrincipal(u *user.User) Principal {
	return Principal{role: RoleUser, user: u}
}

func HospitalPrincipal(h *hospital.Hospital) Principal {
	return Principal{role: RoleHospital, hospital: h}
}

func (p Principal) Role() Role {
	return p.role
}

// User returns the user case, or nil when the principal is a hospital.
func (p Principal) User() *user.User {
	return p.user
}

// Hospital returns the hospital case, or nil when the principal is a user.
func (p Principal) Hospital() *hospital.Hospital {
	return p.hospital
}

// UserID returns the user's id when the principal is a user.
func (p Principal) UserID() *uuid.UUID {
	if p.user == nil {
		return nil
	}
	id := p.user.ID
	return &id
}

// HospitalID returns the hospital's id when the principal is a hospital.
func (p Principal) HospitalID() *uuid.UUID {
	if p.hospital == nil {
		return nil
	}
	id := p.hospital.ID
	return &id
}
