package dto

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreatePropertyTypeRequest struct {
	CreateMasterBaseRequest

	Category types.PropertyTypeCategory `json:"category" validate:"required"`
	Icon     string                     `json:"icon" validate:"omitempty,max=100"`
}

func (r *CreatePropertyTypeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Category.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid property type category").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreatePropertyTypeRequest) ToMasterRecord(ctx context.Context) *master.MasterRecord {
	record := r.toMasterRecord(ctx, types.MasterTypePropertyType)
	record.Category = string(r.Category)
	record.Icon = r.Icon
	return record
}

type UpdatePropertyTypeRequest struct {
	UpdateMasterBaseRequest

	Category *types.PropertyTypeCategory `json:"category,omitempty"`
	Icon     *string                     `json:"icon,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdatePropertyTypeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.validateStatus(); err != nil {
		return err
	}
	if r.Category != nil {
		if err := r.Category.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid property type category").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdatePropertyTypeRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if r.Category != nil {
		record.Category = string(*r.Category)
	}
	if r.Icon != nil {
		record.Icon = *r.Icon
	}
}
