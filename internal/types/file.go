package types

import (
	"fmt"

	"github.com/samber/lo"
)

// FileEntityType identifies the domain entity an uploaded file belongs to
type FileEntityType string

const (
	FileEntityProject FileEntityType = "project"
	FileEntityBuilder FileEntityType = "builder"
	FileEntityAgent   FileEntityType = "agent"
	FileEntityMaster  FileEntityType = "master"
)

func (t FileEntityType) Validate() error {
	allowed := []FileEntityType{
		FileEntityProject,
		FileEntityBuilder,
		FileEntityAgent,
		FileEntityMaster,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid file entity type: %s", t)
	}
	return nil
}

// FileFilter filters file listings
type FileFilter struct {
	*QueryFilter

	UploadedBy string         `json:"uploaded_by,omitempty" form:"uploaded_by"`
	EntityType FileEntityType `json:"entity_type,omitempty" form:"entity_type"`
	EntityID   string         `json:"entity_id,omitempty" form:"entity_id"`
}

func NewDefaultFileFilter() *FileFilter {
	return &FileFilter{
		QueryFilter: &QueryFilter{
			Page:  lo.ToPtr(1),
			Limit: lo.ToPtr(10),
			Sort:  lo.ToPtr("created_at"),
			Order: lo.ToPtr(OrderDesc),
		},
	}
}

func (f *FileFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultFileFilter().QueryFilter
	}

	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}

	if f.EntityType != "" {
		if err := f.EntityType.Validate(); err != nil {
			return err
		}
	}

	return nil
}
