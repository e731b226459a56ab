package service

import (
	"context"
	"fmt"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// FloorService manages floor levels. Every floor carries a derived display
// name: "Ground Floor" for 0, "Basement N" below grade, ordinals above.
type FloorService interface {
	CreateFloor(ctx context.Context, req *dto.CreateFloorRequest) (*dto.MasterRecordResponse, error)
	GetFloor(ctx context.Context, id string) (*dto.MasterRecordResponse, error)
	ListFloors(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error)
	UpdateFloor(ctx context.Context, id string, req *dto.UpdateFloorRequest) (*dto.MasterRecordResponse, error)
	DeleteFloor(ctx context.Context, id string) error
	GetFloorStatistics(ctx context.Context) (*dto.NumericStatisticsResponse, error)

	UsageChecker
}

type floorService struct {
	ServiceParams

	masters MasterService
}

func NewFloorService(params ServiceParams, masters MasterService) FloorService {
	svc := &floorService{ServiceParams: params, masters: masters}
	masters.RegisterUsageChecker(types.MasterTypeFloor, svc)
	return svc
}

// FloorDisplayName derives the human-facing name for a floor number
func FloorDisplayName(floorNumber int) string {
	switch {
	case floorNumber == 0:
		return "Ground Floor"
	case floorNumber < 0:
		return fmt.Sprintf("Basement %d", -floorNumber)
	default:
		return fmt.Sprintf("%s Floor", ordinal(floorNumber))
	}
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func (s *floorService) CreateFloor(ctx context.Context, req *dto.CreateFloorRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToMasterRecord(ctx)
	record.DisplayName = FloorDisplayName(*req.FloorNumber)
	if record.Name == "" {
		record.Name = record.DisplayName
	}

	record, err := s.masters.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *floorService) GetFloor(ctx context.Context, id string) (*dto.MasterRecordResponse, error) {
	record, err := s.masters.Get(ctx, types.MasterTypeFloor, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *floorService) ListFloors(ctx context.Context, filter *types.MasterFilter) (*dto.ListMastersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	records, total, err := s.masters.List(ctx, types.MasterTypeFloor, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewListMastersResponse(records, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *floorService) UpdateFloor(ctx context.Context, id string, req *dto.UpdateFloorRequest) (*dto.MasterRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.masters.Get(ctx, types.MasterTypeFloor, id)
	if err != nil {
		return nil, err
	}

	req.Apply(record)
	if req.FloorNumber != nil {
		record.DisplayName = FloorDisplayName(*req.FloorNumber)
	}

	record, err = s.masters.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return dto.NewMasterRecordResponse(record), nil
}

func (s *floorService) DeleteFloor(ctx context.Context, id string) error {
	return s.masters.Remove(ctx, types.MasterTypeFloor, id)
}

func (s *floorService) GetFloorStatistics(ctx context.Context) (*dto.NumericStatisticsResponse, error) {
	return numericStatistics(ctx, s.masters, s.MasterRepo, types.MasterTypeFloor)
}

func (s *floorService) CheckUsage(ctx context.Context, record *master.MasterRecord) error {
	return nil
}

// numericStatistics augments the generic statistics with the numeric value
// bounds of the type
func numericStatistics(ctx context.Context, masters MasterService, repo master.Repository, masterType types.MasterType) (*dto.NumericStatisticsResponse, error) {
	stats, err := masters.GetStatistics(ctx, masterType)
	if err != nil {
		return nil, err
	}

	minValue, maxValue, err := repo.NumericBounds(ctx, masterType)
	if err != nil {
		return nil, err
	}

	return &dto.NumericStatisticsResponse{
		Statistics:      stats,
		MinNumericValue: minValue,
		MaxNumericValue: maxValue,
	}, nil
}
