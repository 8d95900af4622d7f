package auth

import (
	"strings"

	"github.com/kitchenops/admin-api/internal"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and returns a validation error on failure.
func (d LoginDTO) Validate() error {
	if strings.TrimSpace(d.Email) == "" || d.Password == "" {
		return internal.NewValidationError("Email and password are required")
	}
	return nil
}

// NormalizedEmail trims and lower-cases the email so lookups are
// case-insensitive regardless of how the address was stored.
func (d LoginDTO) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(d.Email))
}
