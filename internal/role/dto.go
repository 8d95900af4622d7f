package role

import (
	"strings"

	"github.com/kitchenops/admin-api/internal"
)

// CreateRoleDTO matches the roles page payload: a title plus the ids of the
// permissions the role bundles.
type CreateRoleDTO struct {
	Title         string  `json:"title"`
	PermissionIDs []int64 `json:"permission_ids"`
}

type UpdateRoleDTO struct {
	Title         string  `json:"title"`
	PermissionIDs []int64 `json:"permission_ids"`
}

type ListResponse struct {
	Data []*Role `json:"data"`
}

func (d CreateRoleDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return internal.NewValidationError("Title is required")
	}
	return nil
}

func (d UpdateRoleDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return internal.NewValidationError("Title is required")
	}
	return nil
}
