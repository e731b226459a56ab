package testutil

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// InMemoryFileStore implements file.Repository
type InMemoryFileStore struct {
	*InMemoryStore[*file.File]
}

func NewInMemoryFileStore() *InMemoryFileStore {
	return &InMemoryFileStore{
		InMemoryStore: NewInMemoryStore[*file.File](),
	}
}

func fileFilterFn(ctx context.Context, f *file.File, filter interface{}) bool {
	if f == nil {
		return false
	}

	flt, ok := filter.(*types.FileFilter)
	if !ok || flt == nil {
		return f.Status != types.StatusArchived
	}

	if status := flt.GetStatus(); status != nil {
		if f.Status != *status {
			return false
		}
	} else if f.Status == types.StatusArchived {
		return false
	}

	if flt.UploadedBy != "" && f.UploadedBy != flt.UploadedBy {
		return false
	}
	if flt.EntityType != "" && f.EntityType != flt.EntityType {
		return false
	}
	if flt.EntityID != "" && f.EntityID != flt.EntityID {
		return false
	}

	return true
}

func fileSortFn(i, j *file.File) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryFileStore) Create(ctx context.Context, f *file.File) error {
	if f == nil {
		return ierr.NewError("file cannot be nil").
			WithHint("File data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, f.ID, f); err != nil {
		return ierr.WithError(err).
			WithHint("A file with this identifier already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryFileStore) Get(ctx context.Context, id string) (*file.File, error) {
	f, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || f.Status == types.StatusArchived {
		return nil, ierr.NewErrorf("file with ID %s was not found", id).
			WithHint("The requested file does not exist").
			Mark(ierr.ErrNotFound)
	}
	return f, nil
}

func (s *InMemoryFileStore) List(ctx context.Context, filter *types.FileFilter) ([]*file.File, error) {
	if filter == nil {
		filter = types.NewDefaultFileFilter()
	}
	return s.InMemoryStore.List(ctx, filter, fileFilterFn, fileSortFn)
}

func (s *InMemoryFileStore) Count(ctx context.Context, filter *types.FileFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultFileFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, fileFilterFn)
}

func (s *InMemoryFileStore) Update(ctx context.Context, f *file.File) error {
	if f == nil {
		return ierr.NewError("file cannot be nil").
			WithHint("File data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, f.ID, f); err != nil {
		return ierr.WithError(err).
			WithHint("The requested file does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
