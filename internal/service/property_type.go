package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// PropertyTypeService manages the property type catalogue
type PropertyTypeService interface {
	CreatePropertyType(ctx context.Context, req *dto.CreatePropertyTypeRequest) (*dto.MasterRecordResponse, error)
	GetPropertyType(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	ListPropertyTypes(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	UpdatePropertyType(ctx context.Context, id string, req *dto.UpdatePropertyTypeRequest) (*dto.MasterRecordResponse, error)
	DeletePropertyType(ctx context.Context, id string) error
	GetPropertyTypeStatistics(ctx context.Context) (*master.Statistics, error)

	UsageChecker
}

type propertyTypeService struct {
	ServiceParams

	masters MasterService
}

func NewPropertyTypeService(params ServiceParams, masters MasterService) PropertyTypeService {
	svc := &propertyTypeService{ServiceParams: params, masters: masters}
	masters.RegisterUsageChecker(types.MasterTypePropertyType, svc)
	return svc
}

func (s *propertyTypeService) CreatePropertyType(ctx context.Context, req *dto.CreatePropertyTypeRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Create(ctx, req.ToMasterRecord(ctx))
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *propertyTypeService) GetPropertyType(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, types.MasterTypePropertyType, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *propertyTypeService) ListPropertyTypes(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, types.MasterTypePropertyType, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *propertyTypeService) UpdatePropertyType(ctx context.Context, id string, req *dto.UpdatePropertyTypeRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, types.MasterTypePropertyType, id)
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

func (s *propertyTypeService) DeletePropertyType(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, types.MasterTypePropertyType, id)
}

func (s *propertyTypeService) GetPropertyTypeStatistics(ctx context.Context) (*master.Statistics, error) {
	return s.masters.GetStatistics(ctx, types.MasterTypePropertyType)
}

func (s *propertyTypeService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}
