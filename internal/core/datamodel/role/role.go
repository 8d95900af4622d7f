package role

import (
	"time"

	permissionDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/permission"
	"gorm.io/gorm"
)

type Role struct {
	ID          int64                            `gorm:"primaryKey"`
	Title       string                           `gorm:"column:title;uniqueIndex;not null"`
	Permissions []permissionDatamodel.Permission `gorm:"many2many:permission_role;joinForeignKey:role_id;joinReferences:permission_id"`
	CreatedAt   time.Time                        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                        `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt                   `gorm:"column:deleted_at"`
}

func (Role) TableName() string {
	return "roles"
}
