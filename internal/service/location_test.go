package service

import (
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type LocationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     LocationService
	cityService CityService
	city        *dto.MasterRecordResponse
}

func TestLocationService(t *testing.T) {
	suite.Run(t, new(LocationServiceSuite))
}

func (s *LocationServiceSuite) SetupTest() {
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
	s.service = NewLocationService(params, masters)
	s.cityService = NewCityService(params, masters)

	city, err := s.cityService.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Mumbai"},
		State:                   "Maharashtra",
	})
	s.Require().NoError(err)
	s.city = city
}

func (s *LocationServiceSuite) TestCreateLocation() {
	resp, err := s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                s.city.ID,
		PinCodes:                types.StringList{"400053"},
	})
	s.NoError(err)
	s.Equal("Andheri", resp.Name)
	s.Equal(s.city.ID, resp.ParentID)
	s.Equal(types.ParentTypeCity, resp.ParentType)
}

func (s *LocationServiceSuite) TestCreateLocationMissingParent() {
	_, err := s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                "city_missing",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LocationServiceSuite) TestCreateLocationArchivedParent() {
	err := s.cityService.DeleteCity(s.GetContext(), s.city.ID)
	s.Require().NoError(err)

	_, err = s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                s.city.ID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LocationServiceSuite) TestListLocationsByParent() {
	other, err := s.cityService.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Pune"},
		State:                   "Maharashtra",
	})
	s.Require().NoError(err)

	for _, name := range []string{"Andheri", "Bandra"} {
		_, err := s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
			CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: name},
			ParentID:                s.city.ID,
		})
		s.Require().NoError(err)
	}
	_, err = s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Hinjewadi"},
		ParentID:                other.ID,
	})
	s.Require().NoError(err)

	filter := types.NewDefaultMasterFilter()
	filter.ParentID = s.city.ID

	resp, err := s.service.ListLocations(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *LocationServiceSuite) TestUpdateLocationKeepsParent() {
	location, err := s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                s.city.ID,
	})
	s.Require().NoError(err)

	resp, err := s.service.UpdateLocation(s.GetContext(), location.ID, &dto.UpdateLocationRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Name: lo.ToPtr("Andheri West"),
		},
	})
	s.NoError(err)
	s.Equal("Andheri West", resp.Name)
	s.Equal(s.city.ID, resp.ParentID)
}

func (s *LocationServiceSuite) TestDuplicateNameAcrossParents() {
	other, err := s.cityService.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Pune"},
		State:                   "Maharashtra",
	})
	s.Require().NoError(err)

	_, err = s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Station Road"},
		ParentID:                s.city.ID,
	})
	s.Require().NoError(err)

	// Location names are unique per type, not per parent
	_, err = s.service.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Station Road"},
		ParentID:                other.ID,
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}
