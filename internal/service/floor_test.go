package service

import (
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type FloorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service FloorService
}

func TestFloorService(t *testing.T) {
	suite.Run(t, new(FloorServiceSuite))
}

func (s *FloorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		S3:          s.GetS3(),
		Auth:        s.GetAuth(),
		Cache:       s.GetCache(),
		MasterRepo:  s.GetStores().MasterRepo,
		BuilderRepo: s.GetStores().BuilderRepo,
		AgentRepo:   s.GetStores().AgentRepo,
		ProjectRepo: s.GetStores().ProjectRepo,
		FileRepo:    s.GetStores().FileRepo,
	}
	s.service = NewFloorService(params, NewMasterService(params))
}

func TestFloorDisplayName(t *testing.T) {
	cases := map[int]string{
		-2:  "Basement 2",
		-1:  "Basement 1",
		0:   "Ground Floor",
		1:   "1st Floor",
		2:   "2nd Floor",
		3:   "3rd Floor",
		4:   "4th Floor",
		11:  "11th Floor",
		12:  "12th Floor",
		13:  "13th Floor",
		21:  "21st Floor",
		22:  "22nd Floor",
		23:  "23rd Floor",
		101: "101st Floor",
		111: "111th Floor",
	}
	for number, want := range cases {
		if got := FloorDisplayName(number); got != want {
			t.Errorf("FloorDisplayName(%d) = %q, want %q", number, got, want)
		}
	}
}

func (s *FloorServiceSuite) TestCreateFloorDerivesName() {
	resp, err := s.service.CreateFloor(s.GetContext(), &dto.CreateFloorRequest{
		FloorNumber: lo.ToPtr(0),
	})
	s.NoError(err)
	s.Equal("Ground Floor", resp.Name)
	s.Equal("Ground Floor", resp.DisplayName)
	s.NotNil(resp.NumericValue)
	s.Equal(float64(0), *resp.NumericValue)
}

func (s *FloorServiceSuite) TestCreateFloorExplicitName() {
	resp, err := s.service.CreateFloor(s.GetContext(), &dto.CreateFloorRequest{
		Name:        "Mezzanine",
		FloorNumber: lo.ToPtr(1),
	})
	s.NoError(err)
	s.Equal("Mezzanine", resp.Name)
	s.Equal("1st Floor", resp.DisplayName)
}

func (s *FloorServiceSuite) TestUpdateFloorRederivesDisplayName() {
	floor, err := s.service.CreateFloor(s.GetContext(), &dto.CreateFloorRequest{
		FloorNumber: lo.ToPtr(2),
	})
	s.Require().NoError(err)
	s.Equal("2nd Floor", floor.DisplayName)

	resp, err := s.service.UpdateFloor(s.GetContext(), floor.ID, &dto.UpdateFloorRequest{
		FloorNumber: lo.ToPtr(-1),
	})
	s.NoError(err)
	s.Equal("Basement 1", resp.DisplayName)
	s.Equal(float64(-1), *resp.NumericValue)
}

func (s *FloorServiceSuite) TestFloorStatistics() {
	for _, n := range []int{-1, 0, 3, 12} {
		_, err := s.service.CreateFloor(s.GetContext(), &dto.CreateFloorRequest{
			FloorNumber: lo.ToPtr(n),
		})
		s.Require().NoError(err)
	}

	stats, err := s.service.GetFloorStatistics(s.GetContext())
	s.NoError(err)
	s.Equal(4, stats.Total)
	s.NotNil(stats.MinNumericValue)
	s.NotNil(stats.MaxNumericValue)
	s.Equal(float64(-1), *stats.MinNumericValue)
	s.Equal(float64(12), *stats.MaxNumericValue)
}
