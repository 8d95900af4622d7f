package permission

import (
	"log/slog"
	"strings"

	"github.com/kitchenops/admin-api/internal"
	permissionDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/permission"
)

type RepositoryAPI interface {
	GetAll() ([]*permissionDatamodel.Permission, error)
	GetByID(id int64) (*permissionDatamodel.Permission, error)
	GetByTitle(title string) (*permissionDatamodel.Permission, error)
	Create(p *permissionDatamodel.Permission) error
	Update(p *permissionDatamodel.Permission) error
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

func (s *Service) GetAll() ([]*Permission, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list permissions", "error", err)
		return nil, internal.NewInternalError("failed to list permissions", err)
	}

	permissions := make([]*Permission, 0, len(rows))
	for _, row := range rows {
		permissions = append(permissions, FromDataModel(row))
	}
	return permissions, nil
}

func (s *Service) Create(dto CreatePermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(dto.Title)

	existing, err := s.repo.GetByTitle(title)
	if err != nil {
		return nil, internal.NewInternalError("failed to check permission title", err)
	}
	if existing != nil {
		return nil, internal.ErrTitleTaken
	}

	row := &permissionDatamodel.Permission{Title: title}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create permission", "title", title, "error", err)
		return nil, internal.NewInternalError("failed to create permission", err)
	}

	s.logger.Info("permission created", "id", row.ID, "title", row.Title)
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto UpdatePermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(dto.Title)

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load permission", err)
	}
	if row == nil {
		return nil, internal.ErrPermissionNotFound
	}

	existing, err := s.repo.GetByTitle(title)
	if err != nil {
		return nil, internal.NewInternalError("failed to check permission title", err)
	}
	if existing != nil && existing.ID != id {
		return nil, internal.ErrTitleTaken
	}

	row.Title = title
	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update permission", "id", id, "error", err)
		return nil, internal.NewInternalError("failed to update permission", err)
	}

	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to load permission", err)
	}
	if row == nil {
		return internal.ErrPermissionNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete permission", "id", id, "error", err)
		return internal.NewInternalError("failed to delete permission", err)
	}

	s.logger.Info("permission deleted", "id", id)
	return nil
}
