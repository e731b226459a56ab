package builder

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// Builder is a real-estate developer that projects reference
type Builder struct {
	ID              string         `json:"id" gorm:"column:id;primaryKey"`
	Name            string         `json:"name" gorm:"column:name;size:100;not null"`
	Description     string         `json:"description,omitempty" gorm:"column:description"`
	EstablishedYear int            `json:"established_year,omitempty" gorm:"column:established_year"`
	Website         string         `json:"website,omitempty" gorm:"column:website"`
	LogoFileID      string         `json:"logo_file_id,omitempty" gorm:"column:logo_file_id"`
	Metadata        types.Metadata `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`

	types.BaseModel
}

func (Builder) TableName() string {
	return "builders"
}
