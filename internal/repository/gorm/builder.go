package gorm

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type builderRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewBuilderRepository(client *postgres.Client, log *logger.Logger) builder.Repository {
	return &builderRepository{client: client, log: log}
}

func (r *builderRepository) Create(ctx context.Context, b *builder.Builder) error {
	if err := r.client.WithContext(ctx).Create(b).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A builder with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create builder").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *builderRepository) Get(ctx context.Context, id string) (*builder.Builder, error) {
	var b builder.Builder
	err := r.client.WithContext(ctx).
		Where("id = ? AND status <> ?", id, types.StatusArchived).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewErrorf("builder with ID %s was not found", id).
				WithHint("The requested builder does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get builder").
			Mark(ierr.ErrDatabase)
	}
	return &b, nil
}

func (r *builderRepository) buildQuery(ctx context.Context, filter *types.BuilderFilter) *gorm.DB {
	query := r.client.WithContext(ctx).Model(&builder.Builder{})

	if status := filter.GetStatus(); status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR website ILIKE ?",
			pattern, pattern, pattern)
	}

	return query
}

func (r *builderRepository) List(ctx context.Context, filter *types.BuilderFilter) ([]*builder.Builder, error) {
	if filter == nil {
		filter = types.NewDefaultBuilderFilter()
	}

	order := "ASC"
	if filter.GetOrder() == types.OrderDesc {
		order = "DESC"
	}
	column := "name"
	if filter.GetSort() == "created_at" || filter.GetSort() == "updated_at" {
		column = filter.GetSort()
	}

	var builders []*builder.Builder
	err := r.buildQuery(ctx, filter).
		Order(column + " " + order).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&builders).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list builders").
			Mark(ierr.ErrDatabase)
	}
	return builders, nil
}

func (r *builderRepository) Count(ctx context.Context, filter *types.BuilderFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultBuilderFilter()
	}

	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count builders").
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}

func (r *builderRepository) Update(ctx context.Context, b *builder.Builder) error {
	if err := r.client.WithContext(ctx).Save(b).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A builder with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update builder").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *builderRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := r.client.WithContext(ctx).
		Model(&builder.Builder{}).
		Where("lower(name) = lower(?) AND status <> ?", name, types.StatusArchived)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check builder name uniqueness").
			Mark(ierr.ErrDatabase)
	}
	return count > 0, nil
}
