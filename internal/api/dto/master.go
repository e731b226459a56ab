package dto

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// MasterRecordResponse wraps a master record for API responses
type MasterRecordResponse struct {
	*master.MasterRecord
}

// ListMastersResponse represents a paginated master record listing
type ListMastersResponse = types.ListResponse[*MasterRecordResponse]

func NewMasterRecordResponse(record *master.MasterRecord) *MasterRecordResponse {
	return &MasterRecordResponse{MasterRecord: record}
}

func NewListMastersResponse(records []*master.MasterRecord, total, page, limit int) *ListMastersResponse {
	items := make([]*MasterRecordResponse, len(records))
	for i, r := range records {
		items[i] = NewMasterRecordResponse(r)
	}
	resp := types.NewListResponse(items, total, page, limit)
	return &resp
}

// CreateMasterBaseRequest carries the fields every master type shares on
// creation. Type-specific requests embed it.
type CreateMasterBaseRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	Code        string         `json:"code" validate:"omitempty,max=50"`
	SortOrder   int            `json:"sort_order" validate:"min=0,max=9999"`
	IsDefault   bool           `json:"is_default"`
	IsPopular   bool           `json:"is_popular"`
	Metadata    types.Metadata `json:"metadata"`
}

func (r CreateMasterBaseRequest) toMasterRecord(ctx context.Context, masterType types.MasterType) *master.MasterRecord {
	return &master.MasterRecord{
		ID:          types.GenerateUUIDWithPrefix(masterType.UUIDPrefix()),
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Code:        strings.TrimSpace(r.Code),
		Type:        masterType,
		SortOrder:   r.SortOrder,
		IsDefault:   r.IsDefault,
		IsPopular:   r.IsPopular,
		Metadata:    r.Metadata,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateMasterBaseRequest carries the shared partial-update fields. Nil
// pointers leave the stored value untouched. Status can move between active
// and inactive only; archiving happens through delete.
type UpdateMasterBaseRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	Code        *string        `json:"code,omitempty" validate:"omitempty,max=50"`
	SortOrder   *int           `json:"sort_order,omitempty" validate:"omitempty,min=0,max=9999"`
	IsDefault   *bool          `json:"is_default,omitempty"`
	IsPopular   *bool          `json:"is_popular,omitempty"`
	Metadata    types.Metadata `json:"metadata,omitempty"`
	Status      *types.Status  `json:"status,omitempty"`
}

func (r UpdateMasterBaseRequest) validateStatus() error {
	if r.Status == nil {
		return nil
	}
	if err := r.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid status").
			Mark(ierr.ErrValidation)
	}
	if *r.Status == types.StatusArchived {
		return ierr.NewError("status cannot be set to archived").
			WithHint("Use the delete operation to archive a record").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r UpdateMasterBaseRequest) apply(record *master.MasterRecord) {
	if r.Name != nil {
		record.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		record.Description = *r.Description
	}
	if r.Code != nil {
		record.Code = strings.TrimSpace(*r.Code)
	}
	if r.SortOrder != nil {
		record.SortOrder = *r.SortOrder
	}
	if r.IsDefault != nil {
		record.IsDefault = *r.IsDefault
	}
	if r.IsPopular != nil {
		record.IsPopular = *r.IsPopular
	}
	if r.Metadata != nil {
		record.Metadata = r.Metadata
	}
	if r.Status != nil {
		record.Status = *r.Status
	}
}
