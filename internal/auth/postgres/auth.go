package postgres

import (
	"errors"

	"github.com/kitchenops/admin-api/internal"
	"github.com/kitchenops/admin-api/internal/auth"
	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
	userDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

// FindUserByEmail fetches one non-deleted user by normalized email. The caller
// passes an already trimmed and lower-cased address; comparison against stored
// values is case-insensitive.
func (r *Repository) FindUserByEmail(email string) (*auth.CredentialRecord, error) {
	var row userDatamodel.User
	err := r.db.Where("LOWER(email) = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toCredentialRecord(&row), nil
}

func (r *Repository) FindUserByID(id int64) (*auth.CredentialRecord, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toCredentialRecord(&row), nil
}

// RoleTitle resolves the title of a non-deleted role. A missing role is not an
// error; the session degrades to a null title.
func (r *Repository) RoleTitle(roleID int64) (*string, error) {
	var row roleDatamodel.Role
	err := r.db.Select("title").Where("id = ?", roleID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row.Title, nil
}

// PermissionCodes returns the lower-cased titles of all permissions joined to
// the role through the association table. A soft-deleted role grants nothing,
// even though its permission_role rows survive the delete.
func (r *Repository) PermissionCodes(roleID int64) ([]string, error) {
	query := `SELECT LOWER(p.title)
	            FROM permission_role pr
	            JOIN permissions p ON p.id = pr.permission_id AND p.deleted_at IS NULL
	            JOIN roles r ON r.id = pr.role_id AND r.deleted_at IS NULL
	           WHERE pr.role_id = ?`

	rows, err := r.db.Raw(query, roleID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func toCredentialRecord(row *userDatamodel.User) *auth.CredentialRecord {
	return &auth.CredentialRecord{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Password: row.Password,
		RoleID:   row.RoleID,
	}
}
