package service

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// AuthService handles back-office login
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := s.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.Logger.Warnw("login failed", "username", req.Username)
		return nil, err
	}

	return &dto.AuthResponse{
		Token:    token,
		UserID:   s.Config.Auth.AdminUsername,
		TenantID: types.DefaultTenantID,
	}, nil
}
