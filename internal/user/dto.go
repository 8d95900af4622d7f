package user

import (
	"strings"

	"github.com/kitchenops/admin-api/internal"
)

type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   *int64 `json:"role_id"`
}

// UpdateUserDTO leaves the password optional; an empty value keeps the stored one.
type UpdateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   *int64 `json:"role_id"`
}

type ListResponse struct {
	Data []*User `json:"data"`
}

func (d CreateUserDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("Name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return internal.NewValidationError("Email is required")
	}
	if d.Password == "" {
		return internal.NewValidationError("Password is required")
	}
	return nil
}

func (d UpdateUserDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("Name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return internal.NewValidationError("Email is required")
	}
	return nil
}

func (d CreateUserDTO) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(d.Email))
}

func (d UpdateUserDTO) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(d.Email))
}
