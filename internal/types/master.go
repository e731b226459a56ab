package types

import (
	"fmt"

	"github.com/samber/lo"
)

// MasterType discriminates the logical master-data kind a record represents.
// It is fixed at creation time and never changes.
type MasterType string

const (
	MasterTypeCity         MasterType = "city"
	MasterTypeLocation     MasterType = "location"
	MasterTypeAmenity      MasterType = "amenity"
	MasterTypeFloor        MasterType = "floor"
	MasterTypeTower        MasterType = "tower"
	MasterTypePropertyType MasterType = "property_type"
	MasterTypeRoom         MasterType = "room"
	MasterTypeWashroom     MasterType = "washroom"
)

func (t MasterType) String() string {
	return string(t)
}

func (t MasterType) Validate() error {
	allowed := []MasterType{
		MasterTypeCity,
		MasterTypeLocation,
		MasterTypeAmenity,
		MasterTypeFloor,
		MasterTypeTower,
		MasterTypePropertyType,
		MasterTypeRoom,
		MasterTypeWashroom,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid master type: %s", t)
	}
	return nil
}

// UUIDPrefix returns the id prefix used for records of this type
func (t MasterType) UUIDPrefix() string {
	switch t {
	case MasterTypeCity:
		return UUID_PREFIX_CITY
	case MasterTypeLocation:
		return UUID_PREFIX_LOCATION
	case MasterTypeAmenity:
		return UUID_PREFIX_AMENITY
	case MasterTypeFloor:
		return UUID_PREFIX_FLOOR
	case MasterTypeTower:
		return UUID_PREFIX_TOWER
	case MasterTypePropertyType:
		return UUID_PREFIX_PROPERTY_TYPE
	case MasterTypeRoom:
		return UUID_PREFIX_ROOM
	case MasterTypeWashroom:
		return UUID_PREFIX_WASHROOM
	default:
		return "master"
	}
}

// AmenityCategory groups amenities for filtered dropdowns
type AmenityCategory string

const (
	AmenityCategoryBasic        AmenityCategory = "basic"
	AmenityCategorySports       AmenityCategory = "sports"
	AmenityCategorySecurity     AmenityCategory = "security"
	AmenityCategoryLifestyle    AmenityCategory = "lifestyle"
	AmenityCategoryConvenience  AmenityCategory = "convenience"
	AmenityCategoryEnvironment  AmenityCategory = "environment"
	AmenityCategoryConnectivity AmenityCategory = "connectivity"
)

func (c AmenityCategory) Validate() error {
	allowed := []AmenityCategory{
		AmenityCategoryBasic,
		AmenityCategorySports,
		AmenityCategorySecurity,
		AmenityCategoryLifestyle,
		AmenityCategoryConvenience,
		AmenityCategoryEnvironment,
		AmenityCategoryConnectivity,
	}
	if !lo.Contains(allowed, c) {
		return fmt.Errorf("invalid amenity category: %s", c)
	}
	return nil
}

// PropertyTypeCategory groups property types by usage
type PropertyTypeCategory string

const (
	PropertyTypeCategoryResidential PropertyTypeCategory = "residential"
	PropertyTypeCategoryCommercial  PropertyTypeCategory = "commercial"
	PropertyTypeCategoryIndustrial  PropertyTypeCategory = "industrial"
	PropertyTypeCategoryLand        PropertyTypeCategory = "land"
)

func (c PropertyTypeCategory) Validate() error {
	allowed := []PropertyTypeCategory{
		PropertyTypeCategoryResidential,
		PropertyTypeCategoryCommercial,
		PropertyTypeCategoryIndustrial,
		PropertyTypeCategoryLand,
	}
	if !lo.Contains(allowed, c) {
		return fmt.Errorf("invalid property type category: %s", c)
	}
	return nil
}

// ParentTypeCity is the only parent relation master records carry today:
// locations are children of cities.
const ParentTypeCity = "city"

// GeoNearFilter selects records within RadiusKm great-circle kilometres of
// the given point.
type GeoNearFilter struct {
	Longitude float64 `json:"longitude" form:"longitude"`
	Latitude  float64 `json:"latitude" form:"latitude"`
	RadiusKm  float64 `json:"radius_km" form:"radius_km"`
}

func (g GeoNearFilter) Validate() error {
	if g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if g.RadiusKm <= 0 {
		return fmt.Errorf("radius_km must be positive")
	}
	return nil
}

// MasterFilter carries the generic listing filters plus every type-specific
// filter the adapters layer on top. Unused fields are simply ignored by
// types that do not recognise them.
type MasterFilter struct {
	*QueryFilter

	Search    string `json:"search,omitempty" form:"search"`
	IsDefault *bool  `json:"is_default,omitempty" form:"is_default"`
	IsPopular *bool  `json:"is_popular,omitempty" form:"is_popular"`

	// Location
	ParentID string `json:"parent_id,omitempty" form:"parent_id"`

	// Amenity / PropertyType
	Category string `json:"category,omitempty" form:"category"`

	// Floor / Tower / Room / Washroom
	MinValue *float64 `json:"min_value,omitempty" form:"min_value"`
	MaxValue *float64 `json:"max_value,omitempty" form:"max_value"`
	Unit     string   `json:"unit,omitempty" form:"unit"`

	// City
	State   string `json:"state,omitempty" form:"state"`
	Country string `json:"country,omitempty" form:"country"`
	PinCode string `json:"pin_code,omitempty" form:"pin_code"`

	// City / Location
	Near *GeoNearFilter `json:"near,omitempty"`
}

func NewDefaultMasterFilter() *MasterFilter {
	return &MasterFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *MasterFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}

	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}

	if f.MinValue != nil && f.MaxValue != nil && *f.MaxValue < *f.MinValue {
		return fmt.Errorf("max_value must not be less than min_value")
	}

	if f.Near != nil {
		if err := f.Near.Validate(); err != nil {
			return err
		}
	}

	return nil
}
