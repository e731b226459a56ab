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

type AgentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AgentService
}

func TestAgentService(t *testing.T) {
	suite.Run(t, new(AgentServiceSuite))
}

func (s *AgentServiceSuite) SetupTest() {
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
	s.service = NewAgentService(params)
}

func (s *AgentServiceSuite) TestCreateAgent() {
	resp, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:       "Priya Sharma",
		Email:      "Priya.Sharma@Example.com",
		AgencyName: "Skyline Realty",
	})
	s.NoError(err)
	s.Equal("Priya Sharma", resp.Name)
	// Emails are stored lowercased
	s.Equal("priya.sharma@example.com", resp.Email)
}

func (s *AgentServiceSuite) TestCreateAgentInvalidEmail() {
	_, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Priya Sharma",
		Email: "not-an-email",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AgentServiceSuite) TestCreateAgentDuplicateEmail() {
	_, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
	})
	s.Require().NoError(err)

	_, err = s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Another Agent",
		Email: "PRIYA@example.com",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AgentServiceSuite) TestUpdateAgent() {
	created, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
	})
	s.Require().NoError(err)

	resp, err := s.service.UpdateAgent(s.GetContext(), created.ID, &dto.UpdateAgentRequest{
		Phone:      lo.ToPtr("+91-9800000000"),
		AgencyName: lo.ToPtr("Skyline Realty"),
	})
	s.NoError(err)
	s.Equal("+91-9800000000", resp.Phone)
	s.Equal("Skyline Realty", resp.AgencyName)
}

func (s *AgentServiceSuite) TestUpdateAgentDuplicateEmail() {
	_, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
	})
	s.Require().NoError(err)
	other, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Rahul Verma",
		Email: "rahul@example.com",
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateAgent(s.GetContext(), other.ID, &dto.UpdateAgentRequest{
		Email: lo.ToPtr("priya@example.com"),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AgentServiceSuite) TestDeleteAgent() {
	created, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
	})
	s.Require().NoError(err)

	err = s.service.DeleteAgent(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.GetAgent(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AgentServiceSuite) TestListAgentsByAgency() {
	for _, a := range []struct{ name, email, agency string }{
		{"Priya Sharma", "priya@example.com", "Skyline Realty"},
		{"Rahul Verma", "rahul@example.com", "Skyline Realty"},
		{"Anita Desai", "anita@example.com", "Metro Homes"},
	} {
		_, err := s.service.CreateAgent(s.GetContext(), &dto.CreateAgentRequest{
			Name:       a.name,
			Email:      a.email,
			AgencyName: a.agency,
		})
		s.Require().NoError(err)
	}

	filter := types.NewDefaultAgentFilter()
	filter.AgencyName = "Skyline Realty"

	resp, err := s.service.ListAgents(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}
