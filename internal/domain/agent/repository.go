package agent

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

type Repository interface {
	Create(ctx context.Context, agent *Agent) error
	Get(ctx context.Context, id string) (*Agent, error)
	List(ctx context.Context, filter *types.AgentFilter) ([]*Agent, error)
	Count(ctx context.Context, filter *types.AgentFilter) (int, error)
	Update(ctx context.Context, agent *Agent) error
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
