package gorm

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type fileRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewFileRepository(client *postgres.Client, log *logger.Logger) file.Repository {
	return &fileRepository{client: client, log: log}
}

func (r *fileRepository) Create(ctx context.Context, f *file.File) error {
	if err := r.client.WithContext(ctx).Create(f).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create file record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *fileRepository) Get(ctx context.Context, id string) (*file.File, error) {
	var f file.File
	err := r.client.WithContext(ctx).
		Where("id = ? AND status <> ?", id, types.StatusArchived).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewErrorf("file with ID %s was not found", id).
				WithHint("The requested file does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get file").
			Mark(ierr.ErrDatabase)
	}
	return &f, nil
}

func (r *fileRepository) buildQuery(ctx context.Context, filter *types.FileFilter) *gorm.DB {
	query := r.client.WithContext(ctx).Model(&file.File{})

	if status := filter.GetStatus(); status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	if filter.UploadedBy != "" {
		query = query.Where("uploaded_by = ?", filter.UploadedBy)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}

	return query
}

func (r *fileRepository) List(ctx context.Context, filter *types.FileFilter) ([]*file.File, error) {
	if filter == nil {
		filter = types.NewDefaultFileFilter()
	}

	order := "DESC"
	if filter.GetOrder() == types.OrderAsc {
		order = "ASC"
	}

	var files []*file.File
	err := r.buildQuery(ctx, filter).
		Order("created_at " + order).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&files).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list files").
			Mark(ierr.ErrDatabase)
	}
	return files, nil
}

func (r *fileRepository) Count(ctx context.Context, filter *types.FileFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultFileFilter()
	}

	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count files").
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}

func (r *fileRepository) Update(ctx context.Context, f *file.File) error {
	if err := r.client.WithContext(ctx).Save(f).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update file record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
