package dto

import (
	"strings"

	"assignment_backend/internals/features/users/auth/service"
)

// IdentityRequest is the claim a client posts to /jwt and /logout.
type IdentityRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=255"`
	UID   string `json:"uid" validate:"omitempty,max=128"`
}

func (r IdentityRequest) ToIdentity() service.Identity {
	return service.Identity{
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
		Name:  strings.TrimSpace(r.Name),
		UID:   strings.TrimSpace(r.UID),
	}
}
