package gorm

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type masterRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewMasterRepository(client *postgres.Client, log *logger.Logger) master.Repository {
	return &masterRepository{client: client, log: log}
}

// haversineExpr computes the great-circle distance in kilometres between the
// stored [lng,lat] pair and the given point.
const haversineExpr = `(6371 * acos(least(1.0, greatest(-1.0,
	cos(radians(?)) * cos(radians((coordinates->>1)::float8)) *
	cos(radians((coordinates->>0)::float8) - radians(?)) +
	sin(radians(?)) * sin(radians((coordinates->>1)::float8))))))`

// sortableColumns is the whitelist for user-supplied sort fields
var sortableColumns = map[string]string{
	"name":          "name",
	"sort_order":    "sort_order",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
	"numeric_value": "numeric_value",
	"state":         "state",
	"country":       "country",
	"category":      "category",
}

func (r *masterRepository) Create(ctx context.Context, record *master.MasterRecord) error {
	if err := r.client.WithContext(ctx).Create(record).Error; err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("A %s with this name or code already exists", record.Type).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHintf("Failed to create %s", record.Type).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *masterRepository) Get(ctx context.Context, masterType types.MasterType, id string) (*master.MasterRecord, error) {
	var record master.MasterRecord
	err := r.client.WithContext(ctx).
		Where("id = ? AND type = ? AND status <> ?", id, masterType, types.StatusArchived).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewErrorf("%s with ID %s was not found", masterType, id).
				WithHintf("The requested %s does not exist", masterType).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("Failed to get %s", masterType).
			Mark(ierr.ErrDatabase)
	}
	return &record, nil
}

func (r *masterRepository) List(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) ([]*master.MasterRecord, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	query := r.buildQuery(ctx, masterType, filter)

	column, ok := sortableColumns[filter.GetSort()]
	if !ok {
		column = "sort_order"
	}
	order := "ASC"
	if filter.GetOrder() == types.OrderDesc {
		order = "DESC"
	}

	var records []*master.MasterRecord
	err := query.
		Order(column + " " + order).
		Order("name ASC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&records).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to list %s records", masterType).
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *masterRepository) Count(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}

	var count int64
	err := r.buildQuery(ctx, masterType, filter).Count(&count).Error
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Failed to count %s records", masterType).
			Mark(ierr.ErrDatabase)
	}
	return int(count), nil
}

func (r *masterRepository) buildQuery(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) *gorm.DB {
	query := r.client.WithContext(ctx).
		Model(&master.MasterRecord{}).
		Where("type = ?", masterType)

	if status := filter.GetStatus(); status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR code ILIKE ? OR display_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}
	if filter.IsPopular != nil {
		query = query.Where("is_popular = ?", *filter.IsPopular)
	}
	if filter.ParentID != "" {
		query = query.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinValue != nil {
		query = query.Where("numeric_value >= ?", *filter.MinValue)
	}
	if filter.MaxValue != nil {
		query = query.Where("numeric_value <= ?", *filter.MaxValue)
	}
	if filter.Unit != "" {
		query = query.Where("unit = ?", filter.Unit)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.PinCode != "" {
		query = query.Where("pin_codes @> ?", `["`+filter.PinCode+`"]`)
	}
	if filter.Near != nil {
		query = query.
			Where("coordinates IS NOT NULL").
			Where(haversineExpr+" <= ?",
				filter.Near.Latitude, filter.Near.Longitude, filter.Near.Latitude,
				filter.Near.RadiusKm)
	}

	return query
}

func (r *masterRepository) Update(ctx context.Context, record *master.MasterRecord) error {
	err := r.client.WithContext(ctx).Save(record).Error
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ierr.WithError(err).
				WithHintf("A %s with this name or code already exists", record.Type).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHintf("Failed to update %s", record.Type).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *masterRepository) ExistsByName(ctx context.Context, masterType types.MasterType, name string, excludeID string) (bool, error) {
	return r.exists(ctx, masterType, "lower(name) = lower(?)", name, excludeID)
}

func (r *masterRepository) ExistsByCode(ctx context.Context, masterType types.MasterType, code string, excludeID string) (bool, error) {
	return r.exists(ctx, masterType, "code = ?", code, excludeID)
}

func (r *masterRepository) exists(ctx context.Context, masterType types.MasterType, cond string, value string, excludeID string) (bool, error) {
	query := r.client.WithContext(ctx).
		Model(&master.MasterRecord{}).
		Where("type = ? AND status <> ?", masterType, types.StatusArchived).
		Where(cond, value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check uniqueness").
			Mark(ierr.ErrDatabase)
	}
	return count > 0, nil
}

func (r *masterRepository) GetStatistics(ctx context.Context, masterType types.MasterType) (*master.Statistics, error) {
	byStatus, err := r.countGroupedColumn(ctx, masterType, "status", true)
	if err != nil {
		return nil, err
	}

	stats := &master.Statistics{
		Active:   byStatus[string(types.StatusActive)],
		Inactive: byStatus[string(types.StatusInactive)],
		ByStatus: byStatus,
	}
	stats.Total = stats.Active + stats.Inactive

	type flagCounts struct {
		Popular int64
		Default int64
	}
	var flags flagCounts
	err = r.client.WithContext(ctx).
		Model(&master.MasterRecord{}).
		Select("count(*) FILTER (WHERE is_popular) AS popular, count(*) FILTER (WHERE is_default) AS \"default\"").
		Where("type = ? AND status <> ?", masterType, types.StatusArchived).
		Scan(&flags).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to compute statistics").
			Mark(ierr.ErrDatabase)
	}
	stats.Popular = int(flags.Popular)
	stats.Default = int(flags.Default)

	if masterType == types.MasterTypeAmenity || masterType == types.MasterTypePropertyType {
		byCategory, err := r.CountGrouped(ctx, masterType, "category")
		if err != nil {
			return nil, err
		}
		stats.ByCategory = byCategory
	}

	return stats, nil
}

func (r *masterRepository) CountGrouped(ctx context.Context, masterType types.MasterType, column string) (map[string]int, error) {
	return r.countGroupedColumn(ctx, masterType, column, false)
}

var groupableColumns = []string{"status", "category", "state", "country", "unit"}

func (r *masterRepository) countGroupedColumn(ctx context.Context, masterType types.MasterType, column string, includeArchived bool) (map[string]int, error) {
	if !lo.Contains(groupableColumns, column) {
		return nil, ierr.NewErrorf("cannot group by column %s", column).
			Mark(ierr.ErrValidation)
	}

	query := r.client.WithContext(ctx).
		Model(&master.MasterRecord{}).
		Select(column+" AS key, count(*) AS count").
		Where("type = ?", masterType)
	if !includeArchived {
		query = query.Where("status <> ?", types.StatusArchived)
	}

	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	if err := query.Group(column).Scan(&rows).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to group %s records by %s", masterType, column).
			Mark(ierr.ErrDatabase)
	}

	result := make(map[string]int, len(rows))
	for _, r := range rows {
		if r.Key == "" {
			continue
		}
		result[r.Key] = int(r.Count)
	}
	return result, nil
}

func (r *masterRepository) NumericBounds(ctx context.Context, masterType types.MasterType) (*float64, *float64, error) {
	type bounds struct {
		Min *float64
		Max *float64
	}
	var b bounds
	err := r.client.WithContext(ctx).
		Model(&master.MasterRecord{}).
		Select("min(numeric_value) AS min, max(numeric_value) AS max").
		Where("type = ? AND status <> ?", masterType, types.StatusArchived).
		Scan(&b).Error
	if err != nil {
		return nil, nil, ierr.WithError(err).
			WithHint("Failed to compute numeric bounds").
			Mark(ierr.ErrDatabase)
	}
	return b.Min, b.Max, nil
}
