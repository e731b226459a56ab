package file

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

type Repository interface {
	Create(ctx context.Context, file *File) error
	Get(ctx context.Context, id string) (*File, error)
	List(ctx context.Context, filter *types.FileFilter) ([]*File, error)
	Count(ctx context.Context, filter *types.FileFilter) (int, error)
	Update(ctx context.Context, file *File) error
}
