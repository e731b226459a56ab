package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// NumericMasterService is the shared surface of the tower, room and washroom
// services. The three types differ only in their discriminator; their field
// semantics are identical numeric-valued records.
type NumericMasterService interface {
	Create(ctx context.Context, req *dto.CreateNumericMasterRequest) (*dto.MasterRecordResponse, error)
	Get(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	List(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNumericMasterRequest) (*dto.MasterRecordResponse, error)
	Delete(ctx context.Context, id string) error
	GetStatistics(ctx context.Context) (*dto.NumericStatisticsResponse, error)

	UsageChecker
}

type numericMasterService struct {
	ServiceParams

	masters    MasterService
	masterType types.MasterType
}

func NewTowerService(params ServiceParams, masters MasterService) NumericMasterService {
	return newNumericMasterService(params, masters, types.MasterTypeTower)
}

func NewRoomService(params ServiceParams, masters MasterService) NumericMasterService {
	return newNumericMasterService(params, masters, types.MasterTypeRoom)
}

func NewWashroomService(params ServiceParams, masters MasterService) NumericMasterService {
	return newNumericMasterService(params, masters, types.MasterTypeWashroom)
}

func newNumericMasterService(params ServiceParams, masters MasterService, masterType types.MasterType) NumericMasterService {
	svc := &numericMasterService{
		ServiceParams: params,
		masters:       masters,
		masterType:    masterType,
	}
	masters.RegisterUsageChecker(masterType, svc)
	return svc
}

func (s *numericMasterService) Create(ctx context.Context, req *dto.CreateNumericMasterRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Create(ctx, req.ToMasterRecord(ctx, s.masterType))
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *numericMasterService) Get(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, s.masterType, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *numericMasterService) List(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, s.masterType, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *numericMasterService) Update(ctx context.Context, id string, req *dto.UpdateNumericMasterRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, s.masterType, id)
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

func (s *numericMasterService) Delete(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, s.masterType, id)
}

func (s *numericMasterService) GetStatistics(ctx context.Context) (*dto.NumericStatisticsResponse, error) {
	return numericStatistics(ctx, s.masters, s.MasterRepo, s.masterType)
}

func (s *numericMasterService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}
