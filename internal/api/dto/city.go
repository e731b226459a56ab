package dto

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreateCityRequest struct {
	CreateMasterBaseRequest

	State       string            `json:"state" validate:"required,max=100"`
	Country     string            `json:"country" validate:"omitempty,max=100"`
	Timezone    string            `json:"timezone" validate:"omitempty,max=64"`
	Coordinates types.Coordinates `json:"coordinates"`
	PinCodes    types.StringList  `json:"pin_codes"`
}

func (r *CreateCityRequest) Validate() error {
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

func (r *CreateCityRequest) ToMasterRecord(ctx context.Context) *master.MasterRecord {
	record := r.toMasterRecord(ctx, types.MasterTypeCity)
	record.State = strings.TrimSpace(r.State)
	record.Country = strings.TrimSpace(r.Country)
	record.Timezone = r.Timezone
	record.Coordinates = r.Coordinates
	record.PinCodes = r.PinCodes
	return record
}

type UpdateCityRequest struct {
	UpdateMasterBaseRequest

	State       *string           `json:"state,omitempty" validate:"omitempty,max=100"`
	Country     *string           `json:"country,omitempty" validate:"omitempty,max=100"`
	Timezone    *string           `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Coordinates types.Coordinates `json:"coordinates,omitempty"`
	PinCodes    types.StringList  `json:"pin_codes,omitempty"`
}

func (r *UpdateCityRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.validateStatus(); err != nil {
		return err
	}
	if r.State != nil && strings.TrimSpace(*r.State) == "" {
		return ierr.NewError("state cannot be empty").
			WithHint("City state is required").
			Mark(ierr.ErrValidation)
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

func (r *UpdateCityRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if r.State != nil {
		record.State = strings.TrimSpace(*r.State)
	}
	if r.Country != nil {
		record.Country = strings.TrimSpace(*r.Country)
	}
	if r.Timezone != nil {
		record.Timezone = *r.Timezone
	}
	if len(r.Coordinates) > 0 {
		record.Coordinates = r.Coordinates
	}
	if r.PinCodes != nil {
		record.PinCodes = r.PinCodes
	}
}

// CityStatisticsResponse extends the generic statistics with geography and
// project aggregates
type CityStatisticsResponse struct {
	*master.Statistics

	ByState             map[string]int `json:"by_state"`
	ByCountry           map[string]int `json:"by_country"`
	AverageProjectPrice *string        `json:"average_project_price,omitempty"`
}
