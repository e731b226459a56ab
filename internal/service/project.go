package service

import (
	"context"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// ProjectService manages real-estate projects and their children. Children
// are written as independent inserts; there is no atomic multi-child write.
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectStatistics(ctx context.Context) (*project.Statistics, error)

	AddUnitConfiguration(ctx context.Context, projectID string, req *dto.AddUnitConfigurationRequest) (*project.UnitConfiguration, error)
	RemoveUnitConfiguration(ctx context.Context, projectID, unitID string) error

	AddMedia(ctx context.Context, projectID string, req *dto.AddProjectMediaRequest) (*project.Media, error)
	RemoveMedia(ctx context.Context, projectID, mediaID string) error

	AddDocument(ctx context.Context, projectID string, req *dto.AddProjectDocumentRequest) (*project.Document, error)
	RemoveDocument(ctx context.Context, projectID, documentID string) error
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{ServiceParams: params}
}

func (s *projectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, req.BuilderID, req.CityID, req.LocationID); err != nil {
		return nil, err
	}

	p := req.ToProject(ctx)

	exists, err := s.ProjectRepo.ExistsByName(ctx, p.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ierr.NewErrorf("project with name %s already exists", p.Name).
			WithHintf("A project named %q already exists", p.Name).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created project", "id", p.ID, "name", p.Name, "code", p.Code)
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.UnitConfigurations, err = s.ProjectRepo.ListUnitConfigurations(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Media, err = s.ProjectRepo.ListMedia(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Documents, err = s.ProjectRepo.ListDocuments(ctx, p.ID); err != nil {
		return nil, err
	}

	return dto.NewProjectResponse(p), nil
}

func (s *projectService) ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultProjectFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter").
			Mark(ierr.ErrValidation)
	}

	projects, err := s.ProjectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ProjectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewListProjectsResponse(projects, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LocationID != nil && *req.LocationID != "" {
		if _, err := s.MasterRepo.Get(ctx, types.MasterTypeLocation, *req.LocationID); err != nil {
			if ierr.IsNotFound(err) {
				return nil, ierr.NewErrorf("location %s not found", *req.LocationID).
					WithHint("location_id must reference an existing non-archived location").
					Mark(ierr.ErrValidation)
			}
			return nil, err
		}
	}

	req.Apply(p)

	if req.Name != nil {
		exists, err := s.ProjectRepo.ExistsByName(ctx, p.Name, p.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ierr.NewErrorf("project with name %s already exists", p.Name).
				WithHintf("A project named %q already exists", p.Name).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProjectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(p), nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Status = types.StatusArchived
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProjectRepo.Update(ctx, p); err != nil {
		return err
	}

	s.Logger.Infow("archived project", "id", id)
	return nil
}

func (s *projectService) GetProjectStatistics(ctx context.Context) (*project.Statistics, error) {
	return s.ProjectRepo.GetStatistics(ctx)
}

func (s *projectService) AddUnitConfiguration(ctx context.Context, projectID string, req *dto.AddUnitConfigurationRequest) (*project.UnitConfiguration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return nil, err
	}

	unit := req.ToUnitConfiguration(ctx, projectID)
	if err := s.ProjectRepo.AddUnitConfiguration(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *projectService) RemoveUnitConfiguration(ctx context.Context, projectID, unitID string) error {
	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return err
	}
	return s.ProjectRepo.RemoveUnitConfiguration(ctx, projectID, unitID)
}

func (s *projectService) AddMedia(ctx context.Context, projectID string, req *dto.AddProjectMediaRequest) (*project.Media, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return nil, err
	}

	media := req.ToMedia(ctx, projectID)
	if err := s.ProjectRepo.AddMedia(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *projectService) RemoveMedia(ctx context.Context, projectID, mediaID string) error {
	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return err
	}
	return s.ProjectRepo.RemoveMedia(ctx, projectID, mediaID)
}

func (s *projectService) AddDocument(ctx context.Context, projectID string, req *dto.AddProjectDocumentRequest) (*project.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return nil, err
	}

	if _, err := s.FileRepo.Get(ctx, req.FileID); err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewErrorf("file %s not found", req.FileID).
				WithHint("file_id must reference an uploaded file").
				Mark(ierr.ErrValidation)
		}
		return nil, err
	}

	document := req.ToDocument(ctx, projectID)
	if err := s.ProjectRepo.AddDocument(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *projectService) RemoveDocument(ctx context.Context, projectID, documentID string) error {
	if _, err := s.ProjectRepo.Get(ctx, projectID); err != nil {
		return err
	}
	return s.ProjectRepo.RemoveDocument(ctx, projectID, documentID)
}

func (s *projectService) validateReferences(ctx context.Context, builderID, cityID, locationID string) error {
	if _, err := s.BuilderRepo.Get(ctx, builderID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewErrorf("builder %s not found", builderID).
				WithHint("builder_id must reference an existing non-archived builder").
				Mark(ierr.ErrValidation)
		}
		return err
	}

	if _, err := s.MasterRepo.Get(ctx, types.MasterTypeCity, cityID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewErrorf("city %s not found", cityID).
				WithHint("city_id must reference an existing non-archived city").
				Mark(ierr.ErrValidation)
		}
		return err
	}

	if locationID != "" {
		if _, err := s.MasterRepo.Get(ctx, types.MasterTypeLocation, locationID); err != nil {
			if ierr.IsNotFound(err) {
				return ierr.NewErrorf("location %s not found", locationID).
					WithHint("location_id must reference an existing non-archived location").
					Mark(ierr.ErrValidation)
			}
			return err
		}
	}

	return nil
}
