package project

import (
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// Project is a real-estate project referencing master data and a builder.
// Children (unit configurations, media, documents) live in their own tables
// and are written as independent inserts, not atomic units.
type Project struct {
	ID              string              `json:"id" gorm:"column:id;primaryKey"`
	Name            string              `json:"name" gorm:"column:name;size:150;not null"`
	Code            string              `json:"code" gorm:"column:code"`
	Description     string              `json:"description,omitempty" gorm:"column:description"`
	BuilderID       string              `json:"builder_id" gorm:"column:builder_id;index;not null"`
	CityID          string              `json:"city_id" gorm:"column:city_id;index;not null"`
	LocationID      string              `json:"location_id,omitempty" gorm:"column:location_id;index"`
	ProjectStatus   types.ProjectStatus `json:"project_status" gorm:"column:project_status;index"`
	PriceMin        *decimal.Decimal    `json:"price_min,omitempty" gorm:"column:price_min;type:numeric(14,2)"`
	PriceMax        *decimal.Decimal    `json:"price_max,omitempty" gorm:"column:price_max;type:numeric(14,2)"`
	PossessionDate  *time.Time          `json:"possession_date,omitempty" gorm:"column:possession_date"`
	ReraNumber      string              `json:"rera_number,omitempty" gorm:"column:rera_number"`
	AmenityIDs      types.StringList    `json:"amenity_ids,omitempty" gorm:"column:amenity_ids;type:jsonb"`
	PropertyTypeIDs types.StringList    `json:"property_type_ids,omitempty" gorm:"column:property_type_ids;type:jsonb"`
	Metadata        types.Metadata      `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`

	UnitConfigurations []*UnitConfiguration `json:"unit_configurations,omitempty" gorm:"-"`
	Media              []*Media             `json:"media,omitempty" gorm:"-"`
	Documents          []*Document          `json:"documents,omitempty" gorm:"-"`

	types.BaseModel
}

func (Project) TableName() string {
	return "projects"
}

// UnitConfiguration is one sellable unit layout of a project ("2BHK", ...)
type UnitConfiguration struct {
	ID             string           `json:"id" gorm:"column:id;primaryKey"`
	ProjectID      string           `json:"project_id" gorm:"column:project_id;index;not null"`
	Label          string           `json:"label" gorm:"column:label;not null"`
	Bedrooms       int              `json:"bedrooms" gorm:"column:bedrooms"`
	Bathrooms      int              `json:"bathrooms" gorm:"column:bathrooms"`
	CarpetAreaSqft float64          `json:"carpet_area_sqft" gorm:"column:carpet_area_sqft"`
	Price          *decimal.Decimal `json:"price,omitempty" gorm:"column:price;type:numeric(14,2)"`

	types.BaseModel
}

func (UnitConfiguration) TableName() string {
	return "project_unit_configurations"
}

// Media is one gallery entry of a project
type Media struct {
	ID        string          `json:"id" gorm:"column:id;primaryKey"`
	ProjectID string          `json:"project_id" gorm:"column:project_id;index;not null"`
	Kind      types.MediaKind `json:"kind" gorm:"column:kind;not null"`
	URL       string          `json:"url" gorm:"column:url;not null"`
	Caption   string          `json:"caption,omitempty" gorm:"column:caption"`
	SortOrder int             `json:"sort_order" gorm:"column:sort_order;default:0"`

	types.BaseModel
}

func (Media) TableName() string {
	return "project_media"
}

// Document links an uploaded file to a project
type Document struct {
	ID           string `json:"id" gorm:"column:id;primaryKey"`
	ProjectID    string `json:"project_id" gorm:"column:project_id;index;not null"`
	Title        string `json:"title" gorm:"column:title;not null"`
	FileID       string `json:"file_id" gorm:"column:file_id;not null"`
	DocumentType string `json:"document_type,omitempty" gorm:"column:document_type"`

	types.BaseModel
}

func (Document) TableName() string {
	return "project_documents"
}

// Statistics summarises non-archived projects
type Statistics struct {
	Total        int              `json:"total"`
	ByStatus     map[string]int   `json:"by_status"`
	ByCity       map[string]int   `json:"by_city"`
	AveragePrice *decimal.Decimal `json:"average_price,omitempty"`
}
