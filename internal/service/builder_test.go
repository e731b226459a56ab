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

type BuilderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BuilderService
}

func TestBuilderService(t *testing.T) {
	suite.Run(t, new(BuilderServiceSuite))
}

func (s *BuilderServiceSuite) SetupTest() {
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
	s.service = NewBuilderService(params)
}

func (s *BuilderServiceSuite) TestCreateBuilder() {
	resp, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{
		Name:            "Acme Constructions",
		EstablishedYear: 1995,
		Website:         "https://acme.example.com",
	})
	s.NoError(err)
	s.Equal("Acme Constructions", resp.Name)
	s.Equal(1995, resp.EstablishedYear)
	s.Equal(types.StatusActive, resp.Status)
}

func (s *BuilderServiceSuite) TestCreateBuilderValidation() {
	_, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{
		Name:            "Acme Constructions",
		EstablishedYear: 1523,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BuilderServiceSuite) TestCreateBuilderDuplicateName() {
	_, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.Require().NoError(err)

	_, err = s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "ACME"})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *BuilderServiceSuite) TestUpdateBuilder() {
	created, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.Require().NoError(err)

	resp, err := s.service.UpdateBuilder(s.GetContext(), created.ID, &dto.UpdateBuilderRequest{
		Description: lo.ToPtr("Premium residential developer"),
		Status:      lo.ToPtr(types.StatusInactive),
	})
	s.NoError(err)
	s.Equal("Premium residential developer", resp.Description)
	s.Equal(types.StatusInactive, resp.Status)
}

func (s *BuilderServiceSuite) TestUpdateBuilderDuplicateName() {
	_, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.Require().NoError(err)
	other, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Globex"})
	s.Require().NoError(err)

	_, err = s.service.UpdateBuilder(s.GetContext(), other.ID, &dto.UpdateBuilderRequest{
		Name: lo.ToPtr("Acme"),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *BuilderServiceSuite) TestDeleteBuilder() {
	created, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.Require().NoError(err)

	err = s.service.DeleteBuilder(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.GetBuilder(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// The name frees up once the record is archived
	_, err = s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: "Acme"})
	s.NoError(err)
}

func (s *BuilderServiceSuite) TestListBuilders() {
	for _, name := range []string{"Acme", "Globex", "Initech"} {
		_, err := s.service.CreateBuilder(s.GetContext(), &dto.CreateBuilderRequest{Name: name})
		s.Require().NoError(err)
	}

	filter := types.NewDefaultBuilderFilter()
	filter.Limit = lo.ToPtr(2)

	resp, err := s.service.ListBuilders(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(3, resp.Pagination.Total)
	s.Equal(2, resp.Pagination.TotalPages)
	s.Equal("Acme", resp.Items[0].Name)
}
