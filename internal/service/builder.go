package service

import (
	"context"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// BuilderService manages the builder directory
type BuilderService interface {
	CreateBuilder(ctx context.Context, req *dto.CreateBuilderRequest) (*dto.BuilderResponse, error)
	GetBuilder(ctx context.Context, id string) (*dto.BuilderResponse, error)
	ListBuilders(ctx context.Context, filter *types.BuilderFilter) (*dto.ListBuildersResponse, error)
	UpdateBuilder(ctx context.Context, id string, req *dto.UpdateBuilderRequest) (*dto.BuilderResponse, error)
	DeleteBuilder(ctx context.Context, id string) error
}

type builderService struct {
	ServiceParams
}

func NewBuilderService(params ServiceParams) BuilderService {
	return &builderService{ServiceParams: params}
}

func (s *builderService) CreateBuilder(ctx context.Context, req *dto.CreateBuilderRequest) (*dto.BuilderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToBuilder(ctx)

	exists, err := s.BuilderRepo.ExistsByName(ctx, b.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ierr.NewErrorf("builder with name %s already exists", b.Name).
			WithHintf("A builder named %q already exists", b.Name).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := s.BuilderRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("created builder", "id", b.ID, "name", b.Name)
	return dto.NewBuilderResponse(b), nil
}

func (s *builderService) GetBuilder(ctx context.Context, id string) (*dto.BuilderResponse, error) {
	b, err := s.BuilderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewBuilderResponse(b), nil
}

func (s *builderService) ListBuilders(ctx context.Context, filter *types.BuilderFilter) (*dto.ListBuildersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultBuilderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter").
			Mark(ierr.ErrValidation)
	}

	builders, err := s.BuilderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.BuilderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewListBuildersResponse(builders, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *builderService) UpdateBuilder(ctx context.Context, id string, req *dto.UpdateBuilderRequest) (*dto.BuilderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.BuilderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(b)

	if req.Name != nil {
		exists, err := s.BuilderRepo.ExistsByName(ctx, b.Name, b.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ierr.NewErrorf("builder with name %s already exists", b.Name).
				WithHintf("A builder named %q already exists", b.Name).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	b.UpdatedAt = time.Now().UTC()
	b.UpdatedBy = types.GetUserID(ctx)

	if err := s.BuilderRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return dto.NewBuilderResponse(b), nil
}

func (s *builderService) DeleteBuilder(ctx context.Context, id string) error {
	b, err := s.BuilderRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	b.Status = types.StatusArchived
	b.UpdatedAt = time.Now().UTC()
	b.UpdatedBy = types.GetUserID(ctx)

	if err := s.BuilderRepo.Update(ctx, b); err != nil {
		return err
	}

	s.Logger.Infow("archived builder", "id", id)
	return nil
}
