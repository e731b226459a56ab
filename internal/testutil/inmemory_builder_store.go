package testutil

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// InMemoryBuilderStore implements builder.Repository
type InMemoryBuilderStore struct {
	*InMemoryStore[*builder.Builder]
}

func NewInMemoryBuilderStore() *InMemoryBuilderStore {
	return &InMemoryBuilderStore{
		InMemoryStore: NewInMemoryStore[*builder.Builder](),
	}
}

func builderFilterFn(ctx context.Context, b *builder.Builder, filter interface{}) bool {
	if b == nil {
		return false
	}

	f, ok := filter.(*types.BuilderFilter)
	if !ok || f == nil {
		return b.Status != types.StatusArchived
	}

	if status := f.GetStatus(); status != nil {
		if b.Status != *status {
			return false
		}
	} else if b.Status == types.StatusArchived {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(b.Name + " " + b.Description)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}

func builderSortFn(i, j *builder.Builder) bool {
	if i == nil || j == nil {
		return false
	}
	return i.Name < j.Name
}

func (s *InMemoryBuilderStore) Create(ctx context.Context, b *builder.Builder) error {
	if b == nil {
		return ierr.NewError("builder cannot be nil").
			WithHint("Builder data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, b.ID, b); err != nil {
		return ierr.WithError(err).
			WithHint("A builder with this name already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryBuilderStore) Get(ctx context.Context, id string) (*builder.Builder, error) {
	b, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || b.Status == types.StatusArchived {
		return nil, ierr.NewErrorf("builder with ID %s was not found", id).
			WithHint("The requested builder does not exist").
			Mark(ierr.ErrNotFound)
	}
	return b, nil
}

func (s *InMemoryBuilderStore) List(ctx context.Context, filter *types.BuilderFilter) ([]*builder.Builder, error) {
	if filter == nil {
		filter = types.NewDefaultBuilderFilter()
	}
	return s.InMemoryStore.List(ctx, filter, builderFilterFn, builderSortFn)
}

func (s *InMemoryBuilderStore) Count(ctx context.Context, filter *types.BuilderFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultBuilderFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, builderFilterFn)
}

func (s *InMemoryBuilderStore) Update(ctx context.Context, b *builder.Builder) error {
	if b == nil {
		return ierr.NewError("builder cannot be nil").
			WithHint("Builder data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, b.ID, b); err != nil {
		return ierr.WithError(err).
			WithHint("The requested builder does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryBuilderStore) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	for _, b := range s.All() {
		if b.Status == types.StatusArchived || b.ID == excludeID {
			continue
		}
		if strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
