package file

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// File is the record of an object uploaded to the object store. Bytes live
// in S3; this row carries the key, the public URL and ownership.
type File struct {
	ID          string               `json:"id" gorm:"column:id;primaryKey"`
	FileName    string               `json:"file_name" gorm:"column:file_name;not null"`
	Key         string               `json:"key" gorm:"column:key;not null"`
	URL         string               `json:"url" gorm:"column:url"`
	ContentType string               `json:"content_type" gorm:"column:content_type"`
	SizeBytes   int64                `json:"size_bytes" gorm:"column:size_bytes"`
	UploadedBy  string               `json:"uploaded_by" gorm:"column:uploaded_by;index"`
	EntityType  types.FileEntityType `json:"entity_type,omitempty" gorm:"column:entity_type;index"`
	EntityID    string               `json:"entity_id,omitempty" gorm:"column:entity_id;index"`

	types.BaseModel
}

func (File) TableName() string {
	return "files"
}
