package testutil

import (
	"context"
	"math"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/samber/lo"
)

// InMemoryMasterStore implements master.Repository
type InMemoryMasterStore struct {
	*InMemoryStore[*master.MasterRecord]
}

func NewInMemoryMasterStore() *InMemoryMasterStore {
	return &InMemoryMasterStore{
		InMemoryStore: NewInMemoryStore[*master.MasterRecord](),
	}
}

// masterFilterFn implements the listing filters for master records
func masterFilterFn(masterType types.MasterType) FilterFunc[*master.MasterRecord] {
	return func(ctx context.Context, record *master.MasterRecord, filter interface{}) bool {
		if record == nil || record.Type != masterType {
			return false
		}

		f, ok := filter.(*types.MasterFilter)
		if !ok || f == nil {
			return record.Status != types.StatusArchived
		}

		if status := f.GetStatus(); status != nil {
			if record.Status != *status {
				return false
			}
		} else if record.Status == types.StatusArchived {
			return false
		}

		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			haystack := strings.ToLower(
				record.Name + " " + record.Description + " " + record.Code + " " + record.DisplayName,
			)
			if !strings.Contains(haystack, needle) {
				return false
			}
		}

		if f.IsDefault != nil && record.IsDefault != *f.IsDefault {
			return false
		}
		if f.IsPopular != nil && record.IsPopular != *f.IsPopular {
			return false
		}
		if f.ParentID != "" && record.ParentID != f.ParentID {
			return false
		}
		if f.Category != "" && record.Category != f.Category {
			return false
		}
		if f.MinValue != nil && (record.NumericValue == nil || *record.NumericValue < *f.MinValue) {
			return false
		}
		if f.MaxValue != nil && (record.NumericValue == nil || *record.NumericValue > *f.MaxValue) {
			return false
		}
		if f.Unit != "" && record.Unit != f.Unit {
			return false
		}
		if f.State != "" && record.State != f.State {
			return false
		}
		if f.Country != "" && record.Country != f.Country {
			return false
		}
		if f.PinCode != "" && !lo.Contains(record.PinCodes, f.PinCode) {
			return false
		}
		if f.Near != nil {
			if len(record.Coordinates) != 2 {
				return false
			}
			distance := haversineKm(
				f.Near.Latitude, f.Near.Longitude,
				record.Coordinates.Latitude(), record.Coordinates.Longitude(),
			)
			if distance > f.Near.RadiusKm {
				return false
			}
		}

		return true
	}
}

// haversineKm is the great-circle distance between two points in kilometres
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// masterSortFn sorts by the filter's sort column, falling back to sort order
func masterSortFn(filter *types.MasterFilter) SortFunc[*master.MasterRecord] {
	sortColumn := "sort_order"
	order := types.OrderAsc
	if filter != nil && filter.QueryFilter != nil {
		sortColumn = filter.GetSort()
		order = filter.GetOrder()
	}

	return func(i, j *master.MasterRecord) bool {
		if i == nil || j == nil {
			return false
		}

		less := false
		equal := false
		switch sortColumn {
		case "name":
			less, equal = i.Name < j.Name, i.Name == j.Name
		case "created_at":
			less, equal = i.CreatedAt.Before(j.CreatedAt), i.CreatedAt.Equal(j.CreatedAt)
		case "updated_at":
			less, equal = i.UpdatedAt.Before(j.UpdatedAt), i.UpdatedAt.Equal(j.UpdatedAt)
		case "numeric_value":
			iv, jv := float64(0), float64(0)
			if i.NumericValue != nil {
				iv = *i.NumericValue
			}
			if j.NumericValue != nil {
				jv = *j.NumericValue
			}
			less, equal = iv < jv, iv == jv
		case "state":
			less, equal = i.State < j.State, i.State == j.State
		case "country":
			less, equal = i.Country < j.Country, i.Country == j.Country
		case "category":
			less, equal = i.Category < j.Category, i.Category == j.Category
		default:
			less, equal = i.SortOrder < j.SortOrder, i.SortOrder == j.SortOrder
		}

		if equal {
			return i.Name < j.Name
		}
		if order == types.OrderDesc {
			return !less
		}
		return less
	}
}

func (s *InMemoryMasterStore) Create(ctx context.Context, record *master.MasterRecord) error {
	if record == nil {
		return ierr.NewError("record cannot be nil").
			WithHint("Record data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, record.ID, record); err != nil {
		return ierr.WithError(err).
			WithHintf("A %s with this name or code already exists", record.Type).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryMasterStore) Get(ctx context.Context, masterType types.MasterType, id string) (*master.MasterRecord, error) {
	record, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || record.Type != masterType || record.Status == types.StatusArchived {
		return nil, ierr.NewErrorf("%s with ID %s was not found", masterType, id).
			WithHintf("The requested %s does not exist", masterType).
			Mark(ierr.ErrNotFound)
	}
	return record, nil
}

func (s *InMemoryMasterStore) List(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) ([]*master.MasterRecord, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}
	return s.InMemoryStore.List(ctx, filter, masterFilterFn(masterType), masterSortFn(filter))
}

func (s *InMemoryMasterStore) Count(ctx context.Context, masterType types.MasterType, filter *types.MasterFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultMasterFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, masterFilterFn(masterType))
}

func (s *InMemoryMasterStore) Update(ctx context.Context, record *master.MasterRecord) error {
	if record == nil {
		return ierr.NewError("record cannot be nil").
			WithHint("Record data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, record.ID, record); err != nil {
		return ierr.WithError(err).
			WithHintf("The requested %s does not exist", record.Type).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryMasterStore) ExistsByName(ctx context.Context, masterType types.MasterType, name string, excludeID string) (bool, error) {
	return s.exists(masterType, excludeID, func(record *master.MasterRecord) bool {
		return strings.EqualFold(record.Name, name)
	}), nil
}

func (s *InMemoryMasterStore) ExistsByCode(ctx context.Context, masterType types.MasterType, code string, excludeID string) (bool, error) {
	return s.exists(masterType, excludeID, func(record *master.MasterRecord) bool {
		return record.Code == code
	}), nil
}

func (s *InMemoryMasterStore) exists(masterType types.MasterType, excludeID string, match func(*master.MasterRecord) bool) bool {
	for _, record := range s.All() {
		if record.Type != masterType || record.Status == types.StatusArchived {
			continue
		}
		if record.ID == excludeID {
			continue
		}
		if match(record) {
			return true
		}
	}
	return false
}

func (s *InMemoryMasterStore) GetStatistics(ctx context.Context, masterType types.MasterType) (*master.Statistics, error) {
	stats := &master.Statistics{
		ByStatus: map[string]int{},
	}

	for _, record := range s.All() {
		if record.Type != masterType {
			continue
		}
		stats.ByStatus[string(record.Status)]++
		if record.Status == types.StatusArchived {
			continue
		}
		stats.Total++
		switch record.Status {
		case types.StatusActive:
			stats.Active++
		case types.StatusInactive:
			stats.Inactive++
		}
		if record.IsPopular {
			stats.Popular++
		}
		if record.IsDefault {
			stats.Default++
		}
	}

	if masterType == types.MasterTypeAmenity || masterType == types.MasterTypePropertyType {
		byCategory, err := s.CountGrouped(ctx, masterType, "category")
		if err != nil {
			return nil, err
		}
		stats.ByCategory = byCategory
	}

	return stats, nil
}

func (s *InMemoryMasterStore) CountGrouped(ctx context.Context, masterType types.MasterType, column string) (map[string]int, error) {
	result := map[string]int{}
	for _, record := range s.All() {
		if record.Type != masterType || record.Status == types.StatusArchived {
			continue
		}

		var key string
		switch column {
		case "status":
			key = string(record.Status)
		case "category":
			key = record.Category
		case "state":
			key = record.State
		case "country":
			key = record.Country
		case "unit":
			key = record.Unit
		default:
			return nil, ierr.NewErrorf("cannot group by column %s", column).
				Mark(ierr.ErrValidation)
		}
		if key == "" {
			continue
		}
		result[key]++
	}
	return result, nil
}

func (s *InMemoryMasterStore) NumericBounds(ctx context.Context, masterType types.MasterType) (*float64, *float64, error) {
	var min, max *float64
	for _, record := range s.All() {
		if record.Type != masterType || record.Status == types.StatusArchived || record.NumericValue == nil {
			continue
		}
		v := *record.NumericValue
		if min == nil || v < *min {
			min = lo.ToPtr(v)
		}
		if max == nil || v > *max {
			max = lo.ToPtr(v)
		}
	}
	return min, max, nil
}
