package builder

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

type Repository interface {
	Create(ctx context.Context, builder *Builder) error
	Get(ctx context.Context, id string) (*Builder, error)
	List(ctx context.Context, filter *types.BuilderFilter) ([]*Builder, error)
	Count(ctx context.Context, filter *types.BuilderFilter) (int, error)
	Update(ctx context.Context, builder *Builder) error
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}
