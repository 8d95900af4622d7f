package user

import (
	"time"

	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
	"gorm.io/gorm"
)

// User mirrors the users table. Password may hold either a bcrypt hash or a
// legacy plaintext value; only hashed values are ever written by this codebase.
type User struct {
	ID              int64               `gorm:"primaryKey"`
	Name            string              `gorm:"column:name;not null"`
	Email           string              `gorm:"column:email;uniqueIndex;not null"`
	EmailVerifiedAt *time.Time          `gorm:"column:email_verified_at"`
	Password        string              `gorm:"column:password;not null"`
	RememberToken   *string             `gorm:"column:remember_token"`
	RoleID          *int64              `gorm:"column:role_id"`
	Role            *roleDatamodel.Role `gorm:"foreignKey:RoleID"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt      `gorm:"column:deleted_at"`
}

func (User) TableName() string {
	return "users"
}
