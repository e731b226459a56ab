package master

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// MasterRecord is a single polymorphic master-data row. All master types
// share one physical table, distinguished by the Type discriminator; the
// type-specific fields are nullable columns that only some types populate.
type MasterRecord struct {
	ID          string           `json:"id" gorm:"column:id;primaryKey"`
	Name        string           `json:"name" gorm:"column:name;size:100;not null"`
	Description string           `json:"description,omitempty" gorm:"column:description"`
	Code        string           `json:"code,omitempty" gorm:"column:code"`
	Type        types.MasterType `json:"type" gorm:"column:type;index;not null"`
	SortOrder   int              `json:"sort_order" gorm:"column:sort_order;default:0"`
	IsDefault   bool             `json:"is_default" gorm:"column:is_default;default:false"`
	IsPopular   bool             `json:"is_popular" gorm:"column:is_popular;default:false"`
	Metadata    types.Metadata   `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`

	// Parent-linked (Location)
	ParentID   string `json:"parent_id,omitempty" gorm:"column:parent_id;index"`
	ParentType string `json:"parent_type,omitempty" gorm:"column:parent_type"`

	// Categorized (Amenity, PropertyType)
	Category string `json:"category,omitempty" gorm:"column:category;index"`
	Icon     string `json:"icon,omitempty" gorm:"column:icon"`
	Color    string `json:"color,omitempty" gorm:"column:color"`

	// Numeric-valued (Floor, Tower, Room, Washroom)
	NumericValue *float64 `json:"numeric_value,omitempty" gorm:"column:numeric_value"`
	Unit         string   `json:"unit,omitempty" gorm:"column:unit"`
	MinValue     *float64 `json:"min_value,omitempty" gorm:"column:min_value"`
	MaxValue     *float64 `json:"max_value,omitempty" gorm:"column:max_value"`
	DisplayName  string   `json:"display_name,omitempty" gorm:"column:display_name"`

	// Location-bearing (City)
	State       string            `json:"state,omitempty" gorm:"column:state;index"`
	Country     string            `json:"country,omitempty" gorm:"column:country;index"`
	Coordinates types.Coordinates `json:"coordinates,omitempty" gorm:"column:coordinates;type:jsonb"`
	Timezone    string            `json:"timezone,omitempty" gorm:"column:timezone"`
	PinCodes    types.StringList  `json:"pin_codes,omitempty" gorm:"column:pin_codes;type:jsonb"`

	types.BaseModel
}

func (MasterRecord) TableName() string {
	return "master_records"
}

// Clone returns a copy that shares no mutable state with the receiver.
func (r *MasterRecord) Clone() *MasterRecord {
	clone := *r
	if r.Metadata != nil {
		clone.Metadata = make(types.Metadata, len(r.Metadata))
		for k, v := range r.Metadata {
			clone.Metadata[k] = v
		}
	}
	if r.Coordinates != nil {
		clone.Coordinates = append(types.Coordinates(nil), r.Coordinates...)
	}
	if r.PinCodes != nil {
		clone.PinCodes = append(types.StringList(nil), r.PinCodes...)
	}
	if r.NumericValue != nil {
		v := *r.NumericValue
		clone.NumericValue = &v
	}
	if r.MinValue != nil {
		v := *r.MinValue
		clone.MinValue = &v
	}
	if r.MaxValue != nil {
		v := *r.MaxValue
		clone.MaxValue = &v
	}
	return &clone
}

// Statistics summarises the non-archived records of one master type
type Statistics struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Inactive   int            `json:"inactive"`
	Popular    int            `json:"popular"`
	Default    int            `json:"default"`
	ByCategory map[string]int `json:"by_category,omitempty"`
	ByStatus   map[string]int `json:"by_status"`
}
