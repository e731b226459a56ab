package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// LocationService manages localities within a city
type LocationService interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.MasterRecordResponse, error)
	GetLocation(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	ListLocations(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.MasterRecordResponse, error)
	DeleteLocation(ctx context.Context, id string) error
	GetLocationStatistics(ctx context.Context) (*master.Statistics, error)

	UsageChecker
}

type locationService struct {
	ServiceParams

	masters MasterService
}

func NewLocationService(params ServiceParams, masters MasterService) LocationService {
	svc := &locationService{ServiceParams: params, masters: masters}
	masters.RegisterUsageChecker(types.MasterTypeLocation, svc)
	return svc
}

func (s *locationService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The parent city must exist and be non-archived before anything is
	// written.
	if err := s.validateParentCity(ctx, req.ParentID); err != nil {
		return nil, err
	}

	record, err := s.masters.Create(ctx, req.ToMasterRecord(ctx))
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *locationService) GetLocation(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, types.MasterTypeLocation, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *locationService) ListLocations(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, types.MasterTypeLocation, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, types.MasterTypeLocation, id)
	if err != nil {
		return nil, err
	}

	req.Apply(record)

	record, err = s.masters.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, types.MasterTypeLocation, id)
}

func (s *locationService) GetLocationStatistics(ctx context.Context) (*master.Statistics, error) {
	return s.masters.GetStatistics(ctx, types.MasterTypeLocation)
}

func (s *locationService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}

func (s *locationService) validateParentCity(ctx context.Context, parentID string) error {
	_, err := s.MasterRepo.Get(ctx, types.MasterTypeCity, parentID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewErrorf("parent city %s not found", parentID).
				WithHint("parent_id must reference an existing non-archived city").
				Mark(ierr.ErrValidation)
		}
		return err
	}
	return nil
}
