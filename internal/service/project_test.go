package service

import (
	"strings"
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         ProjectService
	builderService  BuilderService
	cityService     CityService
	locationService LocationService

	builderID  string
	cityID     string
	locationID string
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
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
	s.service = NewProjectService(params)
	s.builderService = NewBuilderService(params)
	s.cityService = NewCityService(params, masters)
	s.locationService = NewLocationService(params, masters)

	builder, err := s.builderService.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.Require().NoError(err)
	s.builderID = builder.ID

	city, err := s.cityService.CreateCity(s.GetContext(), &dto.CreateCityRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Mumbai"},
		State:                   "Maharashtra",
	})
	s.Require().NoError(err)
	s.cityID = city.ID

	location, err := s.locationService.CreateLocation(s.GetContext(), &dto.CreateLocationRequest{
		CreateMasterBaseRequest: dto.CreateMasterBaseRequest{Name: "Andheri"},
		ParentID:                city.ID,
	})
	s.Require().NoError(err)
	s.locationID = location.ID
}

func (s *ProjectServiceSuite) createProject(name string) *dto.ProjectResponse {
	resp, err := s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          name,
		BuilderID:     s.builderID,
		CityID:        s.cityID,
		LocationID:    s.locationID,
		ProjectStatus: types.ProjectStatusUnderConstruction,
		PriceMin:      lo.ToPtr(decimal.NewFromInt(5000000)),
		PriceMax:      lo.ToPtr(decimal.NewFromInt(9000000)),
	})
	s.Require().NoError(err)
	return resp
}

func (s *ProjectServiceSuite) TestCreateProject() {
	resp := s.createProject("Sunrise Heights")
	s.True(strings.HasPrefix(resp.ID, "proj_"))
	s.True(strings.HasPrefix(resp.Code, "PRJ-"))
	s.Equal("Sunrise Heights", resp.Name)
	s.Equal(s.builderID, resp.BuilderID)
	s.Equal(types.ProjectStatusUnderConstruction, resp.ProjectStatus)
}

func (s *ProjectServiceSuite) TestCreateProjectUnknownReferences() {
	_, err := s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          "Sunrise Heights",
		BuilderID:     "bldr_missing",
		CityID:        s.cityID,
		ProjectStatus: types.ProjectStatusUpcoming,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          "Sunrise Heights",
		BuilderID:     s.builderID,
		CityID:        "city_missing",
		ProjectStatus: types.ProjectStatusUpcoming,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          "Sunrise Heights",
		BuilderID:     s.builderID,
		CityID:        s.cityID,
		LocationID:    "loc_missing",
		ProjectStatus: types.ProjectStatusUpcoming,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProjectServiceSuite) TestCreateProjectInvalidPriceRange() {
	_, err := s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          "Sunrise Heights",
		BuilderID:     s.builderID,
		CityID:        s.cityID,
		ProjectStatus: types.ProjectStatusUpcoming,
		PriceMin:      lo.ToPtr(decimal.NewFromInt(9000000)),
		PriceMax:      lo.ToPtr(decimal.NewFromInt(5000000)),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProjectServiceSuite) TestCreateProjectDuplicateName() {
	s.createProject("Sunrise Heights")

	_, err := s.service.CreateProject(s.GetContext(), &dto.CreateProjectRequest{
		Name:          "sunrise heights",
		BuilderID:     s.builderID,
		CityID:        s.cityID,
		ProjectStatus: types.ProjectStatusUpcoming,
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ProjectServiceSuite) TestUpdateProject() {
	created := s.createProject("Sunrise Heights")

	resp, err := s.service.UpdateProject(s.GetContext(), created.ID, &dto.UpdateProjectRequest{
		ProjectStatus: lo.ToPtr(types.ProjectStatusReadyToMove),
		ReraNumber:    lo.ToPtr("P51800000001"),
	})
	s.NoError(err)
	s.Equal(types.ProjectStatusReadyToMove, resp.ProjectStatus)
	s.Equal("P51800000001", resp.ReraNumber)
	// Builder and city references never change after creation
	s.Equal(s.builderID, resp.BuilderID)
	s.Equal(s.cityID, resp.CityID)
}

func (s *ProjectServiceSuite) TestUpdateProjectUnknownLocation() {
	created := s.createProject("Sunrise Heights")

	_, err := s.service.UpdateProject(s.GetContext(), created.ID, &dto.UpdateProjectRequest{
		LocationID: lo.ToPtr("loc_missing"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProjectServiceSuite) TestUnitConfigurations() {
	created := s.createProject("Sunrise Heights")

	unit, err := s.service.AddUnitConfiguration(s.GetContext(), created.ID, &dto.AddUnitConfigurationRequest{
		Label:          "2BHK",
		Bedrooms:       2,
		Bathrooms:      2,
		CarpetAreaSqft: 780,
		Price:          lo.ToPtr(decimal.NewFromInt(7200000)),
	})
	s.NoError(err)
	s.Equal("2BHK", unit.Label)
	s.Equal(created.ID, unit.ProjectID)

	got, err := s.service.GetProject(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(got.UnitConfigurations, 1)

	err = s.service.RemoveUnitConfiguration(s.GetContext(), created.ID, unit.ID)
	s.NoError(err)

	got, err = s.service.GetProject(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(got.UnitConfigurations, 0)
}

func (s *ProjectServiceSuite) TestMedia() {
	created := s.createProject("Sunrise Heights")

	media, err := s.service.AddMedia(s.GetContext(), created.ID, &dto.AddProjectMediaRequest{
		Kind: types.MediaKindImage,
		URL:  "https://cdn.example.com/sunrise/hero.jpg",
	})
	s.NoError(err)
	s.Equal(types.MediaKindImage, media.Kind)

	_, err = s.service.AddMedia(s.GetContext(), created.ID, &dto.AddProjectMediaRequest{
		Kind: "gif",
		URL:  "https://cdn.example.com/sunrise/anim.gif",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.RemoveMedia(s.GetContext(), created.ID, media.ID)
	s.NoError(err)

	err = s.service.RemoveMedia(s.GetContext(), created.ID, media.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestDocuments() {
	created := s.createProject("Sunrise Heights")

	stored := &file.File{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FILE),
		FileName:  "brochure.pdf",
		Key:       "uploads/brochure.pdf",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.Require().NoError(s.GetStores().FileRepo.Create(s.GetContext(), stored))

	document, err := s.service.AddDocument(s.GetContext(), created.ID, &dto.AddProjectDocumentRequest{
		Title:  "Brochure",
		FileID: stored.ID,
	})
	s.NoError(err)
	s.Equal("Brochure", document.Title)

	_, err = s.service.AddDocument(s.GetContext(), created.ID, &dto.AddProjectDocumentRequest{
		Title:  "Missing",
		FileID: "file_missing",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ProjectServiceSuite) TestChildOpsOnUnknownProject() {
	_, err := s.service.AddUnitConfiguration(s.GetContext(), "proj_missing", &dto.AddUnitConfigurationRequest{
		Label: "2BHK",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestDeleteProject() {
	created := s.createProject("Sunrise Heights")

	err := s.service.DeleteProject(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.GetProject(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProjectServiceSuite) TestListProjectsFilters() {
	s.createProject("Sunrise Heights")
	s.createProject("Ocean View")

	filter := types.NewDefaultProjectFilter()
	filter.CityID = s.cityID

	resp, err := s.service.ListProjects(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)

	filter = types.NewDefaultProjectFilter()
	filter.Search = "ocean"

	resp, err = s.service.ListProjects(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Ocean View", resp.Items[0].Name)
}

func (s *ProjectServiceSuite) TestProjectStatistics() {
	s.createProject("Sunrise Heights")
	s.createProject("Ocean View")

	stats, err := s.service.GetProjectStatistics(s.GetContext())
	s.NoError(err)
	s.Equal(2, stats.Total)
	s.Equal(2, stats.ByStatus[string(types.ProjectStatusUnderConstruction)])
	s.Equal(2, stats.ByCity[s.cityID])
	s.NotNil(stats.AveragePrice)
	// Mid price of both projects is (5M + 9M) / 2
	s.True(stats.AveragePrice.Equal(decimal.NewFromInt(7000000)))
}
