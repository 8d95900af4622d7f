package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// User is the sanitized projection handed to clients and carried through
// request contexts. It never includes the password or remember token.
type User struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	RoleID      *int64        `json:"role_id"`
	RoleTitle   *string       `json:"role_title"`
	Permissions PermissionSet `json:"-"`
}

// SessionBundle is the login response: the signed token, the safe user
// projection and the flattened permission-code list the SPA gates menus on.
type SessionBundle struct {
	Token       string        `json:"token"`
	User        *User         `json:"user"`
	Permissions PermissionSet `json:"permissions"`
}

// Claims represents JWT token claims
type Claims struct {
	ID     int64  `json:"id"`
	RoleID *int64 `json:"role_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*SessionBundle, error)
	CurrentSession(userID int64) (*SessionBundle, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// RepositoryAPI is the read surface the login flow needs. All lookups exclude
// soft-deleted rows.
type RepositoryAPI interface {
	FindUserByEmail(email string) (*CredentialRecord, error)
	FindUserByID(id int64) (*CredentialRecord, error)
	RoleTitle(roleID int64) (*string, error)
	PermissionCodes(roleID int64) ([]string, error)
}

// CredentialRecord is the raw user row the verifier works on. The stored
// password may be a bcrypt hash or a legacy plaintext value.
type CredentialRecord struct {
	ID       int64
	Name     string
	Email    string
	Password string
	RoleID   *int64
}

type TokenGeneratorAPI interface {
	Generate(id int64, roleID *int64, email string) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}
