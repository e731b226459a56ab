package gorm

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type projectRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewProjectRepository(client *postgres.Client, log *logger.Logger) project.Repository {
	return &projectRepository{client: client, log: log}
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	if err := r.client.WithContext(ctx).Create(p).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A project with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	err := r.client.WithContext(ctx).
		Where("id = ? AND status <> ?", id, types.StatusArchived).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewErrorf("project with ID %s was not found", id).
				WithHint("The requested project does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get project").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *projectRepository) buildQuery(ctx context.Context, filter *types.ProjectFilter) *gorm.DB {
	query := r.client.WithContext(ctx).Model(&project.Project{})

	if status := filter.GetStatus(); status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR code ILIKE ? OR rera_number ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if filter.CityID != "" {
		query = query.Where("city_id = ?", filter.CityID)
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.BuilderID != "" {
		query = query.Where("builder_id = ?", filter.BuilderID)
	}
	if filter.ProjectStatus != nil {
		query = query.Where("project_status = ?", *filter.ProjectStatus)
	}
	if filter.PriceMin != nil {
		query = query.Where("price_max >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price_min <= ?", *filter.PriceMax)
	}

	return query
}

func (r *projectRepository) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	if filter == nil {
		filter = types.NewDefaultProjectFilter()
	}

	order := "DESC"
	if filter.GetOrder() == types.OrderAsc {
		order = "ASC"
	}
	column := "created_at"
	switch filter.GetSort() {
	case "name", "price_min", "price_max", "possession_date", "updated_at":
		column = filter.GetSort()
	}

	var projects []*project.Project
	err := r.buildQuery(ctx, filter).
		Order(column + " " + order).
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&projects).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list projects").
			Mark(ierr.ErrDatabase)
	}
	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultProjectFilter()
	}

	var count int64
	if err := r.buildQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count projects").
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	if err := r.client.WithContext(ctx).Save(p).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A project with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update project").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := r.client.WithContext(ctx).
		Model(&project.Project{}).
		Where("lower(name) = lower(?) AND status <> ?", name, types.StatusArchived)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check project name uniqueness").
			Mark(ierr.ErrDatabase)
	}
	return count > 0, nil
}

func (r *projectRepository) AddUnitConfiguration(ctx context.Context, unit *project.UnitConfiguration) error {
	if err := r.client.WithContext(ctx).Create(unit).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to add unit configuration").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) RemoveUnitConfiguration(ctx context.Context, projectID, unitID string) error {
	return r.archiveChild(ctx, &project.UnitConfiguration{}, projectID, unitID, "unit configuration")
}

func (r *projectRepository) ListUnitConfigurations(ctx context.Context, projectID string) ([]*project.UnitConfiguration, error) {
	var units []*project.UnitConfiguration
	err := r.client.WithContext(ctx).
		Where("project_id = ? AND status <> ?", projectID, types.StatusArchived).
		Order("bedrooms ASC, label ASC").
		Find(&units).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list unit configurations").
			Mark(ierr.ErrDatabase)
	}
	return units, nil
}

func (r *projectRepository) AddMedia(ctx context.Context, media *project.Media) error {
	if err := r.client.WithContext(ctx).Create(media).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to add media").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) RemoveMedia(ctx context.Context, projectID, mediaID string) error {
	return r.archiveChild(ctx, &project.Media{}, projectID, mediaID, "media entry")
}

func (r *projectRepository) ListMedia(ctx context.Context, projectID string) ([]*project.Media, error) {
	var media []*project.Media
	err := r.client.WithContext(ctx).
		Where("project_id = ? AND status <> ?", projectID, types.StatusArchived).
		Order("sort_order ASC, created_at ASC").
		Find(&media).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list media").
			Mark(ierr.ErrDatabase)
	}
	return media, nil
}

func (r *projectRepository) AddDocument(ctx context.Context, document *project.Document) error {
	if err := r.client.WithContext(ctx).Create(document).Error; err != nil {
		return ierr.WithError(err).
			WithHint("Failed to add document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *projectRepository) RemoveDocument(ctx context.Context, projectID, documentID string) error {
	return r.archiveChild(ctx, &project.Document{}, projectID, documentID, "document")
}

func (r *projectRepository) ListDocuments(ctx context.Context, projectID string) ([]*project.Document, error) {
	var documents []*project.Document
	err := r.client.WithContext(ctx).
		Where("project_id = ? AND status <> ?", projectID, types.StatusArchived).
		Order("created_at ASC").
		Find(&documents).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list documents").
			Mark(ierr.ErrDatabase)
	}
	return documents, nil
}

func (r *projectRepository) archiveChild(ctx context.Context, model interface{}, projectID, childID, kind string) error {
	result := r.client.WithContext(ctx).
		Model(model).
		Where("id = ? AND project_id = ? AND status <> ?", childID, projectID, types.StatusArchived).
		Update("status", types.StatusArchived)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHintf("Failed to remove %s", kind).
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewErrorf("%s %s was not found on project %s", kind, childID, projectID).
			WithHintf("The requested %s does not exist", kind).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *projectRepository) GetStatistics(ctx context.Context) (*project.Statistics, error) {
	type statusRow struct {
		Key   string
		Count int64
	}
	var statusRows []statusRow
	err := r.client.WithContext(ctx).
		Model(&project.Project{}).
		Select("project_status AS key, count(*) AS count").
		Where("status <> ?", types.StatusArchived).
		Group("project_status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to compute project statistics").
			Mark(ierr.ErrDatabase)
	}

	stats := &project.Statistics{
		ByStatus: make(map[string]int, len(statusRows)),
		ByCity:   make(map[string]int),
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Key] = int(row.Count)
		stats.Total += int(row.Count)
	}

	var cityRows []statusRow
	err = r.client.WithContext(ctx).
		Model(&project.Project{}).
		Select("city_id AS key, count(*) AS count").
		Where("status <> ?", types.StatusArchived).
		Group("city_id").
		Scan(&cityRows).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to compute project statistics").
			Mark(ierr.ErrDatabase)
	}
	for _, row := range cityRows {
		stats.ByCity[row.Key] = int(row.Count)
	}

	avg, err := r.averagePrice(ctx, "")
	if err != nil {
		return nil, err
	}
	stats.AveragePrice = avg

	return stats, nil
}

func (r *projectRepository) AveragePriceByCity(ctx context.Context, cityID string) (*decimal.Decimal, error) {
	return r.averagePrice(ctx, cityID)
}

func (r *projectRepository) averagePrice(ctx context.Context, cityID string) (*decimal.Decimal, error) {
	query := r.client.WithContext(ctx).
		Model(&project.Project{}).
		Select("avg((price_min + price_max) / 2)").
		Where("status <> ? AND price_min IS NOT NULL AND price_max IS NOT NULL", types.StatusArchived)
	if cityID != "" {
		query = query.Where("city_id = ?", cityID)
	}

	var avg *decimal.Decimal
	if err := query.Scan(&avg).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to compute average project price").
			Mark(ierr.ErrDatabase)
	}
	return avg, nil
}

func (r *projectRepository) CountByCity(ctx context.Context, cityID string) (int, error) {
	var count int64
	err := r.client.WithContext(ctx).
		Model(&project.Project{}).
		Where("city_id = ? AND status <> ?", cityID, types.StatusArchived).
		Count(&count).Error
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count projects by city").
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}
