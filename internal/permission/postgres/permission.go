package postgres

import (
	"errors"

	permissionDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/permission"
	"github.com/kitchenops/admin-api/internal/permission"
	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) permission.RepositoryAPI {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) GetAll() ([]*permissionDatamodel.Permission, error) {
	var rows []*permissionDatamodel.Permission
	err := r.db.Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *PermissionRepository) GetByID(id int64) (*permissionDatamodel.Permission, error) {
	var row permissionDatamodel.Permission
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *PermissionRepository) GetByTitle(title string) (*permissionDatamodel.Permission, error) {
	var row permissionDatamodel.Permission
	err := r.db.Where("LOWER(title) = LOWER(?)", title).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *PermissionRepository) Create(p *permissionDatamodel.Permission) error {
	return r.db.Create(p).Error
}

func (r *PermissionRepository) Update(p *permissionDatamodel.Permission) error {
	return r.db.Save(p).Error
}

// Delete soft-deletes; gorm.DeletedAt on the model sets deleted_at instead of
// removing the row.
func (r *PermissionRepository) Delete(id int64) error {
	return r.db.Delete(&permissionDatamodel.Permission{}, id).Error
}
