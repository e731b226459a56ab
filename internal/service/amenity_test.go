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

type AmenityServiceSuite struct {
	testutil.BaseServiceTestSuite
	service      AmenityService
	propertyType PropertyTypeService
}

func TestAmenityService(t *testing.T) {
	suite.Run(t, new(AmenityServiceSuite))
}

func (s *AmenityServiceSuite) SetupTest() {
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
	s.service = NewAmenityService(params, masters)
	s.propertyType = NewPropertyTypeService(params, masters)
}

func (s *AmenityServiceSuite) TestCreateAmenity() {
	resp, err := s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Swimming Pool"},
		Category:                types.AmenityCategorySports,
		Icon:                    "pool",
	})
	s.NoError(err)
	s.Equal("Swimming Pool", resp.Name)
	s.Equal(string(types.AmenityCategorySports), resp.Category)
}

func (s *AmenityServiceSuite) TestCreateAmenityInvalidCategory() {
	_, err := s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Swimming Pool"},
		Category:                "luxury",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AmenityServiceSuite) TestListAmenitiesByCategory() {
	for _, a := range []struct {
		name     string
		category types.AmenityCategory
	}{
		{"Swimming Pool", types.AmenityCategorySports},
		{"Gymnasium", types.AmenityCategorySports},
		{"CCTV Surveillance", types.AmenityCategorySecurity},
	} {
		_, err := s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
			CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: a.name},
			Category:                a.category,
		})
		s.Require().NoError(err)
	}

	filter := types.NewDefaultMasterFilter()
	filter.Category = string(types.AmenityCategorySports)

	resp, err := s.service.ListAmenities(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *AmenityServiceSuite) TestUpdateAmenityCategory() {
	created, err := s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Clubhouse"},
		Category:                types.AmenityCategorySports,
	})
	s.Require().NoError(err)

	resp, err := s.service.UpdateAmenity(s.GetContext(), created.ID, &dto.UpdateAmenityRequest{
		Category: lo.ToPtr(types.AmenityCategoryLifestyle),
	})
	s.NoError(err)
	s.Equal(string(types.AmenityCategoryLifestyle), resp.Category)
}

func (s *AmenityServiceSuite) TestAmenityStatisticsByCategory() {
	for _, a := range []struct {
		name     string
		category types.AmenityCategory
	}{
		{"Swimming Pool", types.AmenityCategorySports},
		{"Gymnasium", types.AmenityCategorySports},
		{"Power Backup", types.AmenityCategoryBasic},
	} {
		_, err := s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
			CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: a.name},
			Category:                a.category,
		})
		s.Require().NoError(err)
	}

	stats, err := s.service.GetAmenityStatistics(s.GetContext())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(2, stats.ByCategory[string(types.AmenityCategorySports)])
	s.Equal(1, stats.ByCategory[string(types.AmenityCategoryBasic)])
}

func (s *AmenityServiceSuite) TestPropertyTypeCategories() {
	_, err := s.propertyType.CreatePropertyType(s.GetContext(), &dto.CreatePropertyTypeRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Apartment"},
		Category:                types.PropertyTypeCategoryResidential,
	})
	s.NoError(err)

	_, err = s.propertyType.CreatePropertyType(s.GetContext(), &dto.CreatePropertyTypeRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Spaceship"},
		Category:                "orbital",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Names collide only within a type
	_, err = s.service.CreateAmenity(s.GetContext(), &dto.CreateAmenityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Apartment"},
		Category:                types.AmenityCategoryBasic,
	})
	s.NoError(err)
}
