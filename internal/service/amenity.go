package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// AmenityService manages the amenity catalogue
type AmenityService interface {
	CreateAmenity(ctx context.Context, req *dto.CreateAmenityRequest) (*dto.MasterRecordResponse, error)
	GetAmenity(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	ListAmenities(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	UpdateAmenity(ctx context.Context, id string, req *dto.UpdateAmenityRequest) (*dto.MasterRecordResponse, error)
	DeleteAmenity(ctx context.Context, id string) error
	GetAmenityStatistics(ctx context.Context) (*master.Statistics, error)

	UsageChecker
}

type amenityService struct {
	ServiceParams

	masters MasterService
}

func NewAmenityService(params ServiceParams, masters MasterService) AmenityService {
	svc := &amenityService{ServiceParams: params, masters: masters}
	masters.RegisterUsageChecker(types.MasterTypeAmenity, svc)
	return svc
}

func (s *amenityService) CreateAmenity(ctx context.Context, req *dto.CreateAmenityRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Create(ctx, req.ToMasterRecord(ctx))
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *amenityService) GetAmenity(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, types.MasterTypeAmenity, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *amenityService) ListAmenities(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, types.MasterTypeAmenity, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *amenityService) UpdateAmenity(ctx context.Context, id string, req *dto.UpdateAmenityRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, types.MasterTypeAmenity, id)
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

func (s *amenityService) DeleteAmenity(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, types.MasterTypeAmenity, id)
}

func (s *amenityService) GetAmenityStatistics(ctx context.Context) (*master.Statistics, error) {
	return s.masters.GetStatistics(ctx, types.MasterTypeAmenity)
}

func (s *amenityService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}
