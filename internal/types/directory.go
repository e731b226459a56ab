package types

import (
	"github.com/samber/lo"
)

// BuilderFilter filters builder listings
type BuilderFilter struct {
	*QueryFilter

	Search string `json:"search,omitempty" form:"search"`
}

func NewDefaultBuilderFilter() *BuilderFilter {
	return &BuilderFilter{
		QueryFilter: &QueryFilter{
			Page:  lo.ToPtr(1),
			Limit: lo.ToPtr(10),
			Sort:  lo.ToPtr("name"),
			Order: lo.ToPtr(OrderAsc),
		},
	}
}

func (f *BuilderFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultBuilderFilter().QueryFilter
	}
	return f.QueryFilter.Validate()
}

// AgentFilter filters agent listings
type AgentFilter struct {
	*QueryFilter

	Search     string `json:"search,omitempty" form:"search"`
	AgencyName string `json:"agency_name,omitempty" form:"agency_name"`
}

func NewDefaultAgentFilter() *AgentFilter {
	return &AgentFilter{
		QueryFilter: &QueryFilter{
			Page:  lo.ToPtr(1),
			Limit: lo.ToPtr(10),
			Sort:  lo.ToPtr("name"),
			Order: lo.ToPtr(OrderAsc),
		},
	}
}

func (f *AgentFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultAgentFilter().QueryFilter
	}
	return f.QueryFilter.Validate()
}
