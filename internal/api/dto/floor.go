package dto

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

// CreateFloorRequest creates a floor level. Name is optional: when empty the
// display name derived from the floor number is used.
type CreateFloorRequest struct {
	Name        string         `json:"name" validate:"omitempty,max=100"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	Code        string         `json:"code" validate:"omitempty,max=50"`
	SortOrder   int            `json:"sort_order"`
	IsDefault   bool           `json:"is_default"`
	IsPopular   bool           `json:"is_popular"`
	Metadata    types.Metadata `json:"metadata"`

	FloorNumber *int `json:"floor_number" validate:"required"`
}

func (r *CreateFloorRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateFloorRequest) ToMasterRecord(ctx context.Context) *master.MasterRecord {
	value := float64(*r.FloorNumber)
	return &master.MasterRecord{
		ID:           types.GenerateUUIDWithPrefix(types.MasterTypeFloor.UUIDPrefix()),
		Name:         strings.TrimSpace(r.Name),
		Description:  r.Description,
		Code:         strings.TrimSpace(r.Code),
		Type:         types.MasterTypeFloor,
		SortOrder:    r.SortOrder,
		IsDefault:    r.IsDefault,
		IsPopular:    r.IsPopular,
		Metadata:     r.Metadata,
		NumericValue: &value,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateFloorRequest struct {
	UpdateMasterBaseRequest

	FloorNumber *int `json:"floor_number,omitempty"`
}

func (r *UpdateFloorRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.validateStatus()
}

func (r *UpdateFloorRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if r.FloorNumber != nil {
		value := float64(*r.FloorNumber)
		record.NumericValue = &value
	}
}
