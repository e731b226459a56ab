package dto

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreateAmenityRequest struct {
	CreateMasterBaseRequest

	Category types.AmenityCategory `json:"category" validate:"required"`
	Icon     string                `json:"icon" validate:"omitempty,max=100"`
	Color    string                `json:"color" validate:"omitempty,max=20"`
}

func (r *CreateAmenityRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Category.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid amenity category").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateAmenityRequest) ToMasterRecord(ctx context.Context) *master.MasterRecord {
	record := r.toMasterRecord(ctx, types.MasterTypeAmenity)
	record.Category = string(r.Category)
	record.Icon = r.Icon
	record.Color = r.Color
	return record
}

type UpdateAmenityRequest struct {
	UpdateMasterBaseRequest

	Category *types.AmenityCategory `json:"category,omitempty"`
	Icon     *string                `json:"icon,omitempty" validate:"omitempty,max=100"`
	Color    *string                `json:"color,omitempty" validate:"omitempty,max=20"`
}

func (r *UpdateAmenityRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.validateStatus(); err != nil {
		return err
	}
	if r.Category != nil {
		if err := r.Category.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid amenity category").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateAmenityRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if r.Category != nil {
		record.Category = string(*r.Category)
	}
	if r.Icon != nil {
		record.Icon = *r.Icon
	}
	if r.Color != nil {
		record.Color = *r.Color
	}
}
