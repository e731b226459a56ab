package testutil

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// InMemoryAgentStore implements agent.Repository
type InMemoryAgentStore struct {
	*InMemoryStore[*agent.Agent]
}

func NewInMemoryAgentStore() *InMemoryAgentStore {
	return &InMemoryAgentStore{
		InMemoryStore: NewInMemoryStore[*agent.Agent](),
	}
}

func agentFilterFn(ctx context.Context, a *agent.Agent, filter interface{}) bool {
	if a == nil {
		return false
	}

	f, ok := filter.(*types.AgentFilter)
	if !ok || f == nil {
		return a.Status != types.StatusArchived
	}

	if status := f.GetStatus(); status != nil {
		if a.Status != *status {
			return false
		}
	} else if a.Status == types.StatusArchived {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(a.Name + " " + a.Email + " " + a.AgencyName)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	if f.AgencyName != "" && !strings.EqualFold(a.AgencyName, f.AgencyName) {
		return false
	}

	return true
}

func agentSortFn(i, j *agent.Agent) bool {
	if i == nil || j == nil {
		return false
	}
	return i.Name < j.Name
}

func (s *InMemoryAgentStore) Create(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return ierr.NewError("agent cannot be nil").
			WithHint("Agent data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, a.ID, a); err != nil {
		return ierr.WithError(err).
			WithHint("An agent with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryAgentStore) Get(ctx context.Context, id string) (*agent.Agent, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || a.Status == types.StatusArchived {
		return nil, ierr.NewErrorf("agent with ID %s was not found", id).
			WithHint("The requested agent does not exist").
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryAgentStore) List(ctx context.Context, filter *types.AgentFilter) ([]*agent.Agent, error) {
	if filter == nil {
		filter = types.NewDefaultAgentFilter()
	}
	return s.InMemoryStore.List(ctx, filter, agentFilterFn, agentSortFn)
}

func (s *InMemoryAgentStore) Count(ctx context.Context, filter *types.AgentFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultAgentFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, agentFilterFn)
}

func (s *InMemoryAgentStore) Update(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return ierr.NewError("agent cannot be nil").
			WithHint("Agent data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, a.ID, a); err != nil {
		return ierr.WithError(err).
			WithHint("The requested agent does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryAgentStore) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	for _, a := range s.All() {
		if a.Status == types.StatusArchived || a.ID == excludeID {
			continue
		}
		if strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
