package role

import (
	"time"

	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
	"github.com/kitchenops/admin-api/internal/permission"
)

// Role is a named permission bundle assignable to users.
type Role struct {
	ID          int64                    `json:"id"`
	Title       string                   `json:"title"`
	Permissions []*permission.Permission `json:"permissions"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func FromDataModel(r *roleDatamodel.Role) *Role {
	permissions := make([]*permission.Permission, 0, len(r.Permissions))
	for i := range r.Permissions {
		permissions = append(permissions, permission.FromDataModel(&r.Permissions[i]))
	}
	return &Role{
		ID:          r.ID,
		Title:       r.Title,
		Permissions: permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
