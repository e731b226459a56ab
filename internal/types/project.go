package types

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProjectStatus tracks the construction stage of a project
type ProjectStatus string

const (
	ProjectStatusUpcoming          ProjectStatus = "upcoming"
	ProjectStatusUnderConstruction ProjectStatus = "under_construction"
	ProjectStatusReadyToMove       ProjectStatus = "ready_to_move"
	ProjectStatusCompleted         ProjectStatus = "completed"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) Validate() error {
	allowed := []ProjectStatus{
		ProjectStatusUpcoming,
		ProjectStatusUnderConstruction,
		ProjectStatusReadyToMove,
		ProjectStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid project status: %s", s)
	}
	return nil
}

// MediaKind is the kind of a project media entry
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindVideo    MediaKind = "video"
	MediaKindBrochure MediaKind = "brochure"
)

func (k MediaKind) Validate() error {
	allowed := []MediaKind{MediaKindImage, MediaKindVideo, MediaKindBrochure}
	if !lo.Contains(allowed, k) {
		return fmt.Errorf("invalid media kind: %s", k)
	}
	return nil
}

// ProjectFilter filters project listings
type ProjectFilter struct {
	*QueryFilter

	Search        string           `json:"search,omitempty" form:"search"`
	CityID        string           `json:"city_id,omitempty" form:"city_id"`
	LocationID    string           `json:"location_id,omitempty" form:"location_id"`
	BuilderID     string           `json:"builder_id,omitempty" form:"builder_id"`
	ProjectStatus *ProjectStatus   `json:"project_status,omitempty" form:"project_status"`
	PriceMin      *decimal.Decimal `json:"price_min,omitempty" form:"price_min"`
	PriceMax      *decimal.Decimal `json:"price_max,omitempty" form:"price_max"`
}

func NewDefaultProjectFilter() *ProjectFilter {
	return &ProjectFilter{
		QueryFilter: &QueryFilter{
			Page:  lo.ToPtr(1),
			Limit: lo.ToPtr(10),
			Sort:  lo.ToPtr("created_at"),
			Order: lo.ToPtr(OrderDesc),
		},
	}
}

func (f *ProjectFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultProjectFilter().QueryFilter
	}

	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}

	if f.ProjectStatus != nil {
		if err := f.ProjectStatus.Validate(); err != nil {
			return err
		}
	}

	if f.PriceMin != nil && f.PriceMax != nil && f.PriceMax.LessThan(*f.PriceMin) {
		return fmt.Errorf("price_max must not be less than price_min")
	}

	return nil
}
