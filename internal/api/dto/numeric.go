package dto

import (
	"context"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

// CreateNumericMasterRequest creates a numeric-valued master record. Towers,
// rooms and washrooms share this shape.
type CreateNumericMasterRequest struct {
	CreateMasterBaseRequest

	NumericValue *float64 `json:"numeric_value"`
	Unit         string   `json:"unit" validate:"omitempty,max=20"`
	MinValue     *float64 `json:"min_value"`
	MaxValue     *float64 `json:"max_value"`
}

func (r *CreateNumericMasterRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.MinValue != nil && r.MaxValue != nil && *r.MaxValue < *r.MinValue {
		return ierr.NewError("max_value must not be less than min_value").
			WithHint("max_value must not be less than min_value").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateNumericMasterRequest) ToMasterRecord(ctx context.Context, masterType types.MasterType) *master.MasterRecord {
	record := r.toMasterRecord(ctx, masterType)
	record.NumericValue = r.NumericValue
	record.Unit = r.Unit
	record.MinValue = r.MinValue
	record.MaxValue = r.MaxValue
	return record
}

type UpdateNumericMasterRequest struct {
	UpdateMasterBaseRequest

	NumericValue *float64 `json:"numeric_value,omitempty"`
	Unit         *string  `json:"unit,omitempty" validate:"omitempty,max=20"`
	MinValue     *float64 `json:"min_value,omitempty"`
	MaxValue     *float64 `json:"max_value,omitempty"`
}

func (r *UpdateNumericMasterRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.validateStatus(); err != nil {
		return err
	}
	if r.MinValue != nil && r.MaxValue != nil && *r.MaxValue < *r.MinValue {
		return ierr.NewError("max_value must not be less than min_value").
			WithHint("max_value must not be less than min_value").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateNumericMasterRequest) Apply(record *master.MasterRecord) {
	r.apply(record)
	if r.NumericValue != nil {
		record.NumericValue = r.NumericValue
	}
	if r.Unit != nil {
		record.Unit = *r.Unit
	}
	if r.MinValue != nil {
		record.MinValue = r.MinValue
	}
	if r.MaxValue != nil {
		record.MaxValue = r.MaxValue
	}
}

// NumericStatisticsResponse extends the generic statistics with the numeric
// value bounds of the type
type NumericStatisticsResponse struct {
	*master.Statistics

	MinNumericValue *float64 `json:"min_numeric_value,omitempty"`
	MaxNumericValue *float64 `json:"max_numeric_value,omitempty"`
}
