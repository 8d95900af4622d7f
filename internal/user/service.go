package user

import (
	"log/slog"
	"strings"

	"github.com/kitchenops/admin-api/internal"
	"github.com/kitchenops/admin-api/internal/auth"
	userDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
	Update(u *userDatamodel.User) error
	Delete(id int64) error
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) GetAll(limit, offset int) ([]*User, error) {
	rows, err := s.repo.GetAll(limit, offset)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	users := make([]*User, 0, len(rows))
	for _, row := range rows {
		users = append(users, FromDataModel(row))
	}
	return users, nil
}

// Create stores a new user. The password is always written as a bcrypt hash;
// the legacy plaintext storage the verifier tolerates is read-only history.
func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	email := dto.NormalizedEmail()

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email", err)
	}
	if existing != nil {
		return nil, internal.ErrEmailTaken
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	row := &userDatamodel.User{
		Name:     strings.TrimSpace(dto.Name),
		Email:    email,
		Password: hash,
		RoleID:   dto.RoleID,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create user", "email", email, "error", err)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "id", row.ID, "email", row.Email)
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	email := dto.NormalizedEmail()

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load user", err)
	}
	if row == nil {
		return nil, internal.ErrUserNotFound
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email", err)
	}
	if existing != nil && existing.ID != id {
		return nil, internal.ErrEmailTaken
	}

	row.Name = strings.TrimSpace(dto.Name)
	row.Email = email
	row.RoleID = dto.RoleID

	if dto.Password != "" {
		hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		row.Password = hash
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update user", "id", id, "error", err)
		return nil, internal.NewInternalError("failed to update user", err)
	}

	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to load user", err)
	}
	if row == nil {
		return internal.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "id", id, "error", err)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}
