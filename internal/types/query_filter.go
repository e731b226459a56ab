package types

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// QueryFilter represents a generic page-based query filter with optional
// fields. Archived records are excluded unless Status explicitly asks for
// them.
type QueryFilter struct {
	Page   *int    `json:"page,omitempty" form:"page" validate:"omitempty,min=1"`
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=100"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter defines default values for query filters
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Page:  lo.ToPtr(1),
		Limit: lo.ToPtr(10),
		Sort:  lo.ToPtr("sort_order"),
		Order: lo.ToPtr(OrderAsc),
	}
}

// GetPage returns the page value or default if not set
func (f QueryFilter) GetPage() int {
	if f.Page == nil {
		return *NewDefaultQueryFilter().Page
	}
	return *f.Page
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		return *NewDefaultQueryFilter().Limit
	}
	return *f.Limit
}

// GetOffset returns the number of records to skip: (page-1) * limit
func (f QueryFilter) GetOffset() int {
	return (f.GetPage() - 1) * f.GetLimit()
}

// GetSort returns the sort value or default if not set
func (f QueryFilter) GetSort() string {
	if f.Sort == nil {
		return *NewDefaultQueryFilter().Sort
	}
	return *f.Sort
}

// GetOrder returns the order value or default if not set
func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return *NewDefaultQueryFilter().Order
	}
	return *f.Order
}

// GetStatus returns the requested status, or nil when the default
// non-archived visibility applies
func (f QueryFilter) GetStatus() *Status {
	return f.Status
}

// Validate validates the filter fields
func (f QueryFilter) Validate() error {
	if f.Page != nil && *f.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > 100) {
		return fmt.Errorf("limit must be between 1 and 100")
	}
	if f.Order != nil && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return fmt.Errorf("order must be either 'asc' or 'desc'")
	}
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}
