package auth

import (
	"errors"
	"log/slog"

	"github.com/kitchenops/admin-api/internal"
)

// Service is the credential verifier and session issuer.
type Service struct {
	repo   RepositoryAPI
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate verifies the supplied credentials and, on success, issues a
// session bundle: signed token, sanitized user and resolved permission codes.
// Unknown email and wrong password produce the identical error so responses
// never reveal which one failed.
func (s *Service) Authenticate(dto LoginDTO) (*SessionBundle, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.FindUserByEmail(dto.NormalizedEmail())
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, internal.NewInternalError("credential lookup failed", err)
	}

	if err := VerifyPassword(record.Password, dto.Password); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	return s.issueSession(record)
}

// CurrentSession rebuilds the session bundle for an already-authenticated
// user, re-resolving role and permissions from storage.
func (s *Service) CurrentSession(userID int64) (*SessionBundle, error) {
	record, err := s.repo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrInvalidToken
		}
		return nil, internal.NewInternalError("user lookup failed", err)
	}

	return s.issueSession(record)
}

// ValidateToken checks a bearer token's signature and expiry.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString)
}

// issueSession resolves role title and permission codes for the verified user
// and mints the token. A user without a role gets a null title and an empty
// permission set; that is not an error.
func (s *Service) issueSession(record *CredentialRecord) (*SessionBundle, error) {
	var roleTitle *string
	permissions := NewPermissionSet(nil)

	if record.RoleID != nil {
		title, err := s.repo.RoleTitle(*record.RoleID)
		if err != nil {
			return nil, internal.NewInternalError("role lookup failed", err)
		}
		roleTitle = title

		codes, err := s.repo.PermissionCodes(*record.RoleID)
		if err != nil {
			return nil, internal.NewInternalError("permission lookup failed", err)
		}
		permissions = NewPermissionSet(codes)
	}

	token, err := s.tokens.Generate(record.ID, record.RoleID, record.Email)
	if err != nil {
		return nil, internal.NewInternalError("token signing failed", err)
	}

	user := &User{
		ID:          record.ID,
		Name:        record.Name,
		Email:       record.Email,
		RoleID:      record.RoleID,
		RoleTitle:   roleTitle,
		Permissions: permissions,
	}

	return &SessionBundle{
		Token:       token,
		User:        user,
		Permissions: permissions,
	}, nil
}
