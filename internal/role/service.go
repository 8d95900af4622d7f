package role

import (
	"log/slog"
	"strings"

	"github.com/kitchenops/admin-api/internal"
	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
)

type RepositoryAPI interface {
	GetAll() ([]*roleDatamodel.Role, error)
	GetByID(id int64) (*roleDatamodel.Role, error)
	GetByTitle(title string) (*roleDatamodel.Role, error)
	Create(r *roleDatamodel.Role, permissionIDs []int64) error
	Update(r *roleDatamodel.Role, permissionIDs []int64) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Role, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return nil, internal.NewInternalError("failed to list roles", err)
	}

	roles := make([]*Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, FromDataModel(row))
	}
	return roles, nil
}

func (s *Service) Create(dto CreateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(dto.Title)

	existing, err := s.repo.GetByTitle(title)
	if err != nil {
		return nil, internal.NewInternalError("failed to check role title", err)
	}
	if existing != nil {
		return nil, internal.ErrTitleTaken
	}

	row := &roleDatamodel.Role{Title: title}
	if err := s.repo.Create(row, dto.PermissionIDs); err != nil {
		s.logger.Error("failed to create role", "title", title, "error", err)
		return nil, internal.NewInternalError("failed to create role", err)
	}

	created, err := s.repo.GetByID(row.ID)
	if err != nil || created == nil {
		return FromDataModel(row), nil
	}

	s.logger.Info("role created", "id", row.ID, "title", title, "permissions", len(dto.PermissionIDs))
	return FromDataModel(created), nil
}

func (s *Service) Update(id int64, dto UpdateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(dto.Title)

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load role", err)
	}
	if row == nil {
		return nil, internal.ErrRoleNotFound
	}

	existing, err := s.repo.GetByTitle(title)
	if err != nil {
		return nil, internal.NewInternalError("failed to check role title", err)
	}
	if existing != nil && existing.ID != id {
		return nil, internal.ErrTitleTaken
	}

	row.Title = title
	if err := s.repo.Update(row, dto.PermissionIDs); err != nil {
		s.logger.Error("failed to update role", "id", id, "error", err)
		return nil, internal.NewInternalError("failed to update role", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil || updated == nil {
		return FromDataModel(row), nil
	}
	return FromDataModel(updated), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to load role", err)
	}
	if row == nil {
		return internal.ErrRoleNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete role", "id", id, "error", err)
		return internal.NewInternalError("failed to delete role", err)
	}

	s.logger.Info("role deleted", "id", id)
	return nil
}
