package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type CityServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         CityService
	locationService LocationService
	masterService   MasterService
}

func TestCityService(t *testing.T) {
	suite.Run(t, new(CityServiceSuite))
}

func (s *CityServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *CityServiceSuite) setupService() {
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

	s.masterService = NewMasterService(params)
	s.service = NewCityService(params, s.masterService)
	s.locationService = NewLocationService(params, s.masterService)
}

func (s *CityServiceSuite) createCity(name, state string) *dto.MasterRecordResponse {
	resp, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: name},
		State:                   state,
	})
	s.NoError(err)
	return resp
}

func (s *CityServiceSuite) TestCreateCity() {
	resp, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{
			Name: "Mumbai",
			Code: "MUM",
		},
		State:       "Maharashtra",
		Country:     "India",
		Timezone:    "Asia/Kolkata",
		Coordinates: types.Coordinates{72.8777, 19.0760},
		PinCodes:    types.StringList{"400001", "400002"},
	})
	s.NoError(err)
	s.NotNil(resp)
	s.True(strings.HasPrefix(resp.ID, "city_"))
	s.Equal("Mumbai", resp.Name)
	s.Equal("Maharashtra", resp.State)
	s.Equal(types.StatusActive, resp.Status)
	s.Equal(types.MasterTypeCity, resp.Type)
}

func (s *CityServiceSuite) TestCreateCityValidation() {
	_, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Mumbai"},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Mumbai"},
		State:                   "Maharashtra",
		Coordinates:             types.Coordinates{200, 19},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CityServiceSuite) TestSortOrderBounds() {
	for _, sortOrder := range []int{-5, 10000} {
		_, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
			CreateMasterBaseRequest: dto.CreateMasterBaseRequest{
				Name:      "Mumbai",
				SortOrder: sortOrder,
			},
			State: "Maharashtra",
		})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	}

	city := s.createCity("Mumbai", "Maharashtra")

	_, err := s.service.UpdateCity(s.GetContext(), city.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			SortOrder: lo.ToPtr(10000),
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	resp, err := s.service.UpdateCity(s.GetContext(), city.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			SortOrder: lo.ToPtr(9999),
		},
	})
	s.NoError(err)
	s.Equal(9999, resp.SortOrder)
}

func (s *CityServiceSuite) TestCreateCityDuplicateName() {
	s.createCity("Mumbai", "Maharashtra")

	_, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "mumbai"},
		State:                   "Maharashtra",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *CityServiceSuite) TestCreateCityAfterArchive() {
	city := s.createCity("Mumbai", "Maharashtra")

	err := s.service.DeleteCity(s.GetContext(), city.ID)
	s.NoError(err)

	// The archived record no longer holds the name
	recreated := s.createCity("Mumbai", "Maharashtra")
	s.NotEqual(city.ID, recreated.ID)
}

func (s *CityServiceSuite) TestGetCity() {
	city := s.createCity("Pune", "Maharashtra")

	resp, err := s.service.GetCity(s.GetContext(), city.ID)
	s.NoError(err)
	s.Equal("Pune", resp.Name)

	_, err = s.service.GetCity(s.GetContext(), "city_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CityServiceSuite) TestListCitiesPagination() {
	for i := 1; i <= 12; i++ {
		s.createCity(fmt.Sprintf("City %02d", i), "State")
	}

	filter := types.NewDefaultMasterFilter()
	filter.Page = lo.ToPtr(2)
	filter.Limit = lo.ToPtr(5)
	filter.Sort = lo.ToPtr("name")

	resp, err := s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 5)
	s.Equal(12, resp.Pagination.Total)
	s.Equal(2, resp.Pagination.Page)
	s.Equal(3, resp.Pagination.TotalPages)
	s.Equal("City 06", resp.Items[0].Name)
}

func (s *CityServiceSuite) TestListCitiesByState() {
	s.createCity("Mumbai", "Maharashtra")
	s.createCity("Pune", "Maharashtra")
	s.createCity("Bengaluru", "Karnataka")

	filter := types.NewDefaultMasterFilter()
	filter.State = "Maharashtra"

	resp, err := s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *CityServiceSuite) TestListCitiesSearch() {
	s.createCity("Mumbai", "Maharashtra")
	s.createCity("Navi Mumbai", "Maharashtra")
	s.createCity("Pune", "Maharashtra")

	filter := types.NewDefaultMasterFilter()
	filter.Search = "mumbai"

	resp, err := s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *CityServiceSuite) TestNearbyCities() {
	mumbai, err := s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Mumbai"},
		State:                   "Maharashtra",
		Coordinates:             types.Coordinates{72.8777, 19.0760},
	})
	s.NoError(err)

	_, err = s.service.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Pune"},
		State:                   "Maharashtra",
		Coordinates:             types.Coordinates{73.8567, 18.5204},
	})
	s.NoError(err)

	// Pune is roughly 120 km from Mumbai
	filter := types.NewDefaultMasterFilter()
	filter.Near = &types.GeoNearFilter{Latitude: 19.0760, Longitude: 72.8777, RadiusKm: 50}

	resp, err := s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(mumbai.ID, resp.Items[0].ID)

	filter = types.NewDefaultMasterFilter()
	filter.Near = &types.GeoNearFilter{Latitude: 19.0760, Longitude: 72.8777, RadiusKm: 200}

	resp, err = s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *CityServiceSuite) TestUpdateCity() {
	city := s.createCity("Mumbai", "Maharashtra")

	resp, err := s.service.UpdateCity(s.GetContext(), city.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Status: lo.ToPtr(types.StatusInactive),
		},
		Country: lo.ToPtr("India"),
	})
	s.NoError(err)
	s.Equal(types.StatusInactive, resp.Status)
	s.Equal("India", resp.Country)
	s.Equal("Mumbai", resp.Name)
}

func (s *CityServiceSuite) TestUpdateCityRejectsArchivedStatus() {
	city := s.createCity("Mumbai", "Maharashtra")

	_, err := s.service.UpdateCity(s.GetContext(), city.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Status: lo.ToPtr(types.StatusArchived),
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CityServiceSuite) TestUpdateCityDuplicateName() {
	s.createCity("Mumbai", "Maharashtra")
	pune := s.createCity("Pune", "Maharashtra")

	_, err := s.service.UpdateCity(s.GetContext(), pune.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Name: lo.ToPtr("Mumbai"),
		},
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *CityServiceSuite) TestRejectedUpdateLeavesReadsUnchanged() {
	s.createCity("Mumbai", "Maharashtra")
	pune := s.createCity("Pune", "Maharashtra")

	// Warm the cached read path before the failing rename
	got, err := s.service.GetCity(s.GetContext(), pune.ID)
	s.NoError(err)
	s.Equal("Pune", got.Name)

	_, err = s.service.UpdateCity(s.GetContext(), pune.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Name: lo.ToPtr("Mumbai"),
		},
		State: lo.ToPtr("Gujarat"),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))

	got, err = s.service.GetCity(s.GetContext(), pune.ID)
	s.NoError(err)
	s.Equal("Pune", got.Name)
	s.Equal("Maharashtra", got.State)

	filter := types.NewDefaultMasterFilter()
	filter.Search = "pune"
	listed, err := s.service.ListCities(s.GetContext(), filter)
	s.NoError(err)
	s.Require().Len(listed.Items, 1)
	s.Equal("Pune", listed.Items[0].Name)
}

func (s *CityServiceSuite) TestDeleteCity() {
	city := s.createCity("Mumbai", "Maharashtra")

	err := s.service.DeleteCity(s.GetContext(), city.ID)
	s.NoError(err)

	_, err = s.service.GetCity(s.GetContext(), city.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Deleting twice reports not found, not a second archive
	err = s.service.DeleteCity(s.GetContext(), city.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CityServiceSuite) TestDeleteCityKeepsLocations() {
	city := s.createCity("Mumbai", "Maharashtra")

	location, err := s.locationService.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                city.ID,
	})
	s.NoError(err)

	err = s.service.DeleteCity(s.GetContext(), city.ID)
	s.NoError(err)

	// Archiving the city never cascades to its locations
	got, err := s.locationService.GetLocation(s.GetContext(), location.ID)
	s.NoError(err)
	s.Equal(types.StatusActive, got.Status)
}

func (s *CityServiceSuite) TestGetCityStatistics() {
	s.createCity("Mumbai", "Maharashtra")
	s.createCity("Pune", "Maharashtra")
	bengaluru := s.createCity("Bengaluru", "Karnataka")

	_, err := s.service.UpdateCity(s.GetContext(), bengaluru.ID, &dto.UpdateCityRequest{
		UpdateMasterBaseRequest: dto.UpdateMasterBaseRequest{
			Status: lo.ToPtr(types.StatusInactive),
		},
	})
	s.NoError(err)

	stats, err := s.service.GetCityStatistics(s.GetContext())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(2, stats.Active)
	s.Equal(1, stats.Inactive)
	s.Equal(2, stats.ByState["Maharashtra"])
	s.Equal(1, stats.ByState["Karnataka"])
}
