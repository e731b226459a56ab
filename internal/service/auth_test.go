package service

import (
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
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
	s.service = NewAuthService(params)
}

func (s *AuthServiceSuite) TestLogin() {
	cfg := s.GetConfig()

	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(cfg.Auth.AdminUsername, resp.UserID)
	s.Equal(types.DefaultTenantID, resp.TenantID)

	// The issued token round-trips through the provider
	claims, err := s.GetAuth().ValidateToken(s.GetContext(), resp.Token)
	s.NoError(err)
	s.Equal(cfg.Auth.AdminUsername, claims.UserID)
	s.Equal(types.DefaultTenantID, claims.TenantID)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Username: s.GetConfig().Auth.AdminUsername,
		Password: "wrong",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Username: "nobody",
		Password: s.GetConfig().Auth.AdminPassword,
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestLoginMissingFields() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{Username: "admin"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AuthServiceSuite) TestValidateGarbageToken() {
	_, err := s.GetAuth().ValidateToken(s.GetContext(), "not.a.token")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
