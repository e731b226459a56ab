package service

import (
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type NumericMasterServiceSuite struct {
	testutil.BaseServiceTestSuite
	towers    NumericMasterService
	rooms     NumericMasterService
	washrooms NumericMasterService
}

func TestNumericMasterService(t *testing.T) {
	suite.Run(t, new(NumericMasterServiceSuite))
}

func (s *NumericMasterServiceSuite) SetupTest() {
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
	masters := NewMasterService(params)
	s.towers = NewTowerService(params, masters)
	s.rooms = NewRoomService(params, masters)
	s.washrooms = NewWashroomService(params, masters)
}

func (s *NumericMasterServiceSuite) TestCreate() {
	resp, err := s.towers.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Tower A"},
		NumericValue:            lo.ToPtr(1.0),
		Unit:                    "towers",
	})
	s.NoError(err)
	s.Equal("Tower A", resp.Name)
	s.Equal(float64(1), *resp.NumericValue)
	s.Equal("towers", resp.Unit)
}

func (s *NumericMasterServiceSuite) TestCreateInvalidBounds() {
	_, err := s.rooms.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "3 Rooms"},
		MinValue:                lo.ToPtr(5.0),
		MaxValue:                lo.ToPtr(2.0),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *NumericMasterServiceSuite) TestNamesAndCodesScopedPerType() {
	_, err := s.towers.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Standard", Code: "STD"},
	})
	s.Require().NoError(err)

	// The same name and code in another type is a different namespace
	_, err = s.rooms.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Standard", Code: "STD"},
	})
	s.NoError(err)

	_, err = s.towers.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Deluxe", Code: "STD"},
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *NumericMasterServiceSuite) TestUpdate() {
	tower, err := s.towers.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Tower A"},
		NumericValue:            lo.ToPtr(1.0),
	})
	s.Require().NoError(err)

	resp, err := s.towers.Update(s.GetContext(), tower.ID, &dto.UpdateNumericMasterRequest{
		NumericValue: lo.ToPtr(2.0),
		Unit:         lo.ToPtr("blocks"),
	})
	s.NoError(err)
	s.Equal(float64(2), *resp.NumericValue)
	s.Equal("blocks", resp.Unit)
}

func (s *NumericMasterServiceSuite) TestDelete() {
	washroom, err := s.washrooms.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "2 Washrooms"},
		NumericValue:            lo.ToPtr(2.0),
	})
	s.Require().NoError(err)

	err = s.washrooms.Delete(s.GetContext(), washroom.ID)
	s.NoError(err)

	_, err = s.washrooms.Get(s.GetContext(), washroom.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *NumericMasterServiceSuite) TestStatistics() {
	for i, value := range []float64{1, 2, 4} {
		_, err := s.rooms.Create(s.GetContext(), &dto.CreateNumericMasterRequest{
			CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: roomName(i)},
			NumericValue:            lo.ToPtr(value),
		})
		s.Require().NoError(err)
	}

	stats, err := s.rooms.GetStatistics(s.GetContext())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(float64(1), *stats.MinNumericValue)
	s.Equal(float64(4), *stats.MaxNumericValue)
}

func roomName(i int) string {
	return []string{"1 Room", "2 Rooms", "4 Rooms"}[i]
}
