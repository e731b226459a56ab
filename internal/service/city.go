package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// CityService manages cities: the root of the geography hierarchy
type CityService interface {
	CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*dto.MasterRecordResponse, error)
	GetCity(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	ListCities(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	UpdateCity(ctx context.Context, id string, req *dto.UpdateCityRequest) (*dto.MasterRecordResponse, error)
	DeleteCity(ctx context.Context, id string) error
	GetCityStatistics(ctx context.Context) (*dto.CityStatisticsResponse, error)

	UsageChecker
}

type cityService struct {
	ServiceParams

	masters MasterService
}

func NewCityService(params ServiceParams, masters MasterService) CityService {
	svc := &cityService{ServiceParams: params, masters: masters}
	masters.RegisterUsageChecker(types.MasterTypeCity, svc)
	return svc
}

func (s *cityService) CreateCity(ctx context.Context, req *dto.CreateCityRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Create(ctx, req.ToMasterRecord(ctx))
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *cityService) GetCity(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, types.MasterTypeCity, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *cityService) ListCities(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, types.MasterTypeCity, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *cityService) UpdateCity(ctx context.Context, id string, req *dto.UpdateCityRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, types.MasterTypeCity, id)
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

func (s *cityService) DeleteCity(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, types.MasterTypeCity, id)
}

func (s *cityService) GetCityStatistics(ctx context.Context) (*dto.CityStatisticsResponse, error) {
	stats, err := s.masters.GetStatistics(ctx, types.MasterTypeCity)
	if err != nil {
		return nil, err
	}

	byState, err := s.MasterRepo.CountGrouped(ctx, types.MasterTypeCity, "state")
	if err != nil {
		return nil, err
	}

	byCountry, err := s.MasterRepo.CountGrouped(ctx, types.MasterTypeCity, "country")
	if err != nil {
		return nil, err
	}

	resp := &dto.CityStatisticsResponse{
		Statistics: stats,
		ByState:    byState,
		ByCountry:  byCountry,
	}

	avgPrice, err := s.ProjectRepo.AveragePriceByCity(ctx, "")
	if err != nil {
		return nil, err
	}
	if avgPrice != nil {
		formatted := avgPrice.StringFixed(2)
		resp.AverageProjectPrice = &formatted
	}

	return resp, nil
}

// CheckUsage never blocks archiving. Locations of an archived city remain
// listable and retrievable on their own.
func (s *cityService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}
