package postgres

import (
	"errors"

	permissionDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/permission"
	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
	"github.com/kitchenops/admin-api/internal/role"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll() ([]*roleDatamodel.Role, error) {
	var rows []*roleDatamodel.Role
	err := r.db.Preload("Permissions").Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *RoleRepository) GetByID(id int64) (*roleDatamodel.Role, error) {
	var row roleDatamodel.Role
	err := r.db.Preload("Permissions").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *RoleRepository) GetByTitle(title string) (*roleDatamodel.Role, error) {
	var row roleDatamodel.Role
	err := r.db.Where("LOWER(title) = LOWER(?)", title).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts the role and attaches the given permissions through the
// association table in one transaction.
func (r *RoleRepository) Create(row *roleDatamodel.Role, permissionIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return replacePermissions(tx, row, permissionIDs)
	})
}

// Update saves the role and rewrites its permission set to exactly the given ids.
func (r *RoleRepository) Update(row *roleDatamodel.Role, permissionIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		return replacePermissions(tx, row, permissionIDs)
	})
}

func (r *RoleRepository) Delete(id int64) error {
	return r.db.Delete(&roleDatamodel.Role{}, id).Error
}

func replacePermissions(tx *gorm.DB, row *roleDatamodel.Role, permissionIDs []int64) error {
	var permissions []permissionDatamodel.Permission
	if len(permissionIDs) > 0 {
		if err := tx.Where("id IN ?", permissionIDs).Find(&permissions).Error; err != nil {
			return err
		}
	}
	return tx.Model(row).Association("Permissions").Replace(permissions)
}
