package user

import (
	"time"

	userDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/user"
)

// User is the management-facing projection. The stored password never
// serializes; the json tag on Password is the unconditional strip the login
// response relies on too.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	RoleID    *int64    `json:"role_id"`
	RoleTitle *string   `json:"role_title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(u *userDatamodel.User) *User {
	out := &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		out.RoleTitle = &u.Role.Title
	}
	return out
}
