package dto

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreateLocationRequest struct {
	CreateMasterBaseRequest

	ParentID    string            `json:"parent_id" validate:"required"`
	Coordinates types.Coordinates `json:"coordinates"`
	PinCodes    types.StringList  `json:"pin_codes"`
}

func (r *CreateLocationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if len(r.Coordinates) > 0 {
		if err := r.Coordinates.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid coordinates").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *CreateLocationRequest) ToMasterRecord(ctx context.Context) *master.MasterRecord {
	record := r.toMasterRecord(ctx, types.MasterTypeLocation)
	record.ParentID = r.ParentID
	record.ParentType = types.ParentTypeCity
	record.Coordinates = r.Coordinates
	record.PinCodes = r.PinCodes
	return record
}

type UpdateLocationRequest struct {
	UpdateMasterBaseRequest

	Coordinates types.Coordinates `json:"coordinates,omitempty"`
	PinCodes    types.StringList  `json:"pin_codes,omitempty"`
}

func (r *UpdateLocationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.validateStatus(); err != nil {
		return err
	}
	if len(r.Coordinates) > 0 {
		if err := r.Coordinates.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid coordinates").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateLocationRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if len(r.Coordinates) > 0 {
		record.Coordinates = r.Coordinates
	}
	if r.PinCodes != nil {
		record.PinCodes = r.PinCodes
	}
}
