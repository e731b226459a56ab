package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// InMemoryProjectStore implements project.Repository. Children live in
// their own maps keyed by child ID, mirroring the independent child tables.
type InMemoryProjectStore struct {
	*InMemoryStore[*project.Project]

	mu        sync.RWMutex
	units     map[string]*project.UnitConfiguration
	media     map[string]*project.Media
	documents map[string]*project.Document
}

func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		InMemoryStore: NewInMemoryStore[*project.Project](),
		units:         make(map[string]*project.UnitConfiguration),
		media:         make(map[string]*project.Media),
		documents:     make(map[string]*project.Document),
	}
}

func projectFilterFn(ctx context.Context, p *project.Project, filter interface{}) bool {
	if p == nil {
		return false
	}

	f, ok := filter.(*types.ProjectFilter)
	if !ok || f == nil {
		return p.Status != types.StatusArchived
	}

	if status := f.GetStatus(); status != nil {
		if p.Status != *status {
			return false
		}
	} else if p.Status == types.StatusArchived {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(p.Name + " " + p.Code + " " + p.Description + " " + p.ReraNumber)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	if f.CityID != "" && p.CityID != f.CityID {
		return false
	}
	if f.LocationID != "" && p.LocationID != f.LocationID {
		return false
	}
	if f.BuilderID != "" && p.BuilderID != f.BuilderID {
		return false
	}
	if f.ProjectStatus != nil && p.ProjectStatus != *f.ProjectStatus {
		return false
	}
	if f.PriceMin != nil && (p.PriceMax == nil || p.PriceMax.LessThan(*f.PriceMin)) {
		return false
	}
	if f.PriceMax != nil && (p.PriceMin == nil || p.PriceMin.GreaterThan(*f.PriceMax)) {
		return false
	}

	return true
}

func projectSortFn(i, j *project.Project) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryProjectStore) Create(ctx context.Context, p *project.Project) error {
	if p == nil {
		return ierr.NewError("project cannot be nil").
			WithHint("Project data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
		return ierr.WithError(err).
			WithHint("A project with this name already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusArchived {
		return nil, ierr.NewErrorf("project with ID %s was not found", id).
			WithHint("The requested project does not exist").
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryProjectStore) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	if filter == nil {
		filter = types.NewDefaultProjectFilter()
	}
	return s.InMemoryStore.List(ctx, filter, projectFilterFn, projectSortFn)
}

func (s *InMemoryProjectStore) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultProjectFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, projectFilterFn)
}

func (s *InMemoryProjectStore) Update(ctx context.Context, p *project.Project) error {
	if p == nil {
		return ierr.NewError("project cannot be nil").
			WithHint("Project data is required").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, p.ID, p); err != nil {
		return ierr.WithError(err).
			WithHint("The requested project does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryProjectStore) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	for _, p := range s.All() {
		if p.Status == types.StatusArchived || p.ID == excludeID {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryProjectStore) AddUnitConfiguration(ctx context.Context, unit *project.UnitConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[unit.ID] = unit
	return nil
}

func (s *InMemoryProjectStore) RemoveUnitConfiguration(ctx context.Context, projectID, unitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit, exists := s.units[unitID]
	if !exists || unit.ProjectID != projectID || unit.Status == types.StatusArchived {
		return ierr.NewErrorf("unit configuration with ID %s was not found", unitID).
			WithHint("The requested unit configuration does not exist").
			Mark(ierr.ErrNotFound)
	}
	unit.Status = types.StatusArchived
	return nil
}

func (s *InMemoryProjectStore) ListUnitConfigurations(ctx context.Context, projectID string) ([]*project.UnitConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*project.UnitConfiguration{}
	for _, unit := range s.units {
		if unit.ProjectID == projectID && unit.Status != types.StatusArchived {
			result = append(result, unit)
		}
	}
	return result, nil
}

func (s *InMemoryProjectStore) AddMedia(ctx context.Context, media *project.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media[media.ID] = media
	return nil
}

func (s *InMemoryProjectStore) RemoveMedia(ctx context.Context, projectID, mediaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	media, exists := s.media[mediaID]
	if !exists || media.ProjectID != projectID || media.Status == types.StatusArchived {
		return ierr.NewErrorf("media with ID %s was not found", mediaID).
			WithHint("The requested media does not exist").
			Mark(ierr.ErrNotFound)
	}
	media.Status = types.StatusArchived
	return nil
}

func (s *InMemoryProjectStore) ListMedia(ctx context.Context, projectID string) ([]*project.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*project.Media{}
	for _, media := range s.media {
		if media.ProjectID == projectID && media.Status != types.StatusArchived {
			result = append(result, media)
		}
	}
	return result, nil
}

func (s *InMemoryProjectStore) AddDocument(ctx context.Context, document *project.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[document.ID] = document
	return nil
}

func (s *InMemoryProjectStore) RemoveDocument(ctx context.Context, projectID, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, exists := s.documents[documentID]
	if !exists || document.ProjectID != projectID || document.Status == types.StatusArchived {
		return ierr.NewErrorf("document with ID %s was not found", documentID).
			WithHint("The requested document does not exist").
			Mark(ierr.ErrNotFound)
	}
	document.Status = types.StatusArchived
	return nil
}

func (s *InMemoryProjectStore) ListDocuments(ctx context.Context, projectID string) ([]*project.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*project.Document{}
	for _, document := range s.documents {
		if document.ProjectID == projectID && document.Status != types.StatusArchived {
			result = append(result, document)
		}
	}
	return result, nil
}

func (s *InMemoryProjectStore) GetStatistics(ctx context.Context) (*project.Statistics, error) {
	stats := &project.Statistics{
		ByStatus: map[string]int{},
		ByCity:   map[string]int{},
	}

	for _, p := range s.All() {
		if p.Status == types.StatusArchived {
			continue
		}
		stats.Total++
		stats.ByStatus[string(p.ProjectStatus)]++
		stats.ByCity[p.CityID]++
	}

	avg, err := s.AveragePriceByCity(ctx, "")
	if err != nil {
		return nil, err
	}
	stats.AveragePrice = avg

	return stats, nil
}

func (s *InMemoryProjectStore) AveragePriceByCity(ctx context.Context, cityID string) (*decimal.Decimal, error) {
	sum := decimal.Zero
	count := 0
	for _, p := range s.All() {
		if p.Status == types.StatusArchived || p.PriceMin == nil || p.PriceMax == nil {
			continue
		}
		if cityID != "" && p.CityID != cityID {
			continue
		}
		mid := p.PriceMin.Add(*p.PriceMax).Div(decimal.NewFromInt(2))
		sum = sum.Add(mid)
		count++
	}

	if count == 0 {
		return nil, nil
	}
	avg := sum.Div(decimal.NewFromInt(int64(count)))
	return &avg, nil
}

func (s *InMemoryProjectStore) CountByCity(ctx context.Context, cityID string) (int, error) {
	count := 0
	for _, p := range s.All() {
		if p.Status != types.StatusArchived && p.CityID == cityID {
			count++
		}
	}
	return count, nil
}

// ClearChildren removes all child rows alongside Clear
func (s *InMemoryProjectStore) ClearChildren() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = make(map[string]*project.UnitConfiguration)
	s.media = make(map[string]*project.Media)
	s.documents = make(map[string]*project.Document)
}
