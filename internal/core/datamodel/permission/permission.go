package permission

import (
	"time"

	"gorm.io/gorm"
)

// Permission rows carry the code strings the sidebar menu is gated on,
// e.g. "dashboard" or "order_management". Matching is case-insensitive.
type Permission struct {
	ID        int64          `gorm:"primaryKey"`
	Title     string         `gorm:"column:title;uniqueIndex;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (Permission) TableName() string {
	return "permissions"
}
