package permission

import (
	"strings"

	"github.com/kitchenops/admin-api/internal"
)

type CreatePermissionDTO struct {
	Title string `json:"title"`
}

type UpdatePermissionDTO struct {
	Title string `json:"title"`
}

type ListResponse struct {
	Data []*Permission `json:"data"`
}

func (d CreatePermissionDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return internal.NewValidationError("Title is required")
	}
	return nil
}

func (d UpdatePermissionDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return internal.NewValidationError("Title is required")
	}
	return nil
}
