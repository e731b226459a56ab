package service

import (
	"context"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// AgentService manages the sales agent directory
type AgentService interface {
	CreateAgent(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AgentResponse, error)
	GetAgent(ctx context.Context, id string) (*dto.AgentResponse, error)
	ListAgents(ctx context.Context, filter *types.AgentFilter) (*dto.ListAgentsResponse, error)
	UpdateAgent(ctx context.Context, id string, req *dto.UpdateAgentRequest) (*dto.AgentResponse, error)
	DeleteAgent(ctx context.Context, id string) error
}

type agentService struct {
	ServiceParams
}

func NewAgentService(params ServiceParams) AgentService {
	return &agentService{ServiceParams: params}
}

func (s *agentService) CreateAgent(ctx context.Context, req *dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToAgent(ctx)

	exists, err := s.AgentRepo.ExistsByEmail(ctx, a.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ierr.NewErrorf("agent with email %s already exists", a.Email).
			WithHintf("An agent with email %q already exists", a.Email).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := s.AgentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("created agent", "id", a.ID, "email", a.Email)
	return dto.NewAgentResponse(a), nil
}

func (s *agentService) GetAgent(ctx context.Context, id string) (*dto.AgentResponse, error) {
	a, err := s.AgentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAgentResponse(a), nil
}

func (s *agentService) ListAgents(ctx context.Context, filter *types.AgentFilter) (*dto.ListAgentsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultAgentFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter").
			Mark(ierr.ErrValidation)
	}

	agents, err := s.AgentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.AgentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewListAgentsResponse(agents, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *agentService) UpdateAgent(ctx context.Context, id string, req *dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AgentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(a)

	if req.Email != nil {
		exists, err := s.AgentRepo.ExistsByEmail(ctx, a.Email, a.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ierr.NewErrorf("agent with email %s already exists", a.Email).
				WithHintf("An agent with email %q already exists", a.Email).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = types.GetUserID(ctx)

	if err := s.AgentRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return dto.NewAgentResponse(a), nil
}

func (s *agentService) DeleteAgent(ctx context.Context, id string) error {
	a, err := s.AgentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	a.Status = types.StatusArchived
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = types.GetUserID(ctx)

	if err := s.AgentRepo.Update(ctx, a); err != nil {
		return err
	}

	s.Logger.Infow("archived agent", "id", id)
	return nil
}
