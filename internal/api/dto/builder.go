package dto

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreateBuilderRequest struct {
	Name            string         `json:"name" validate:"required,max=100"`
	Description     string         `json:"description" validate:"omitempty,max=2000"`
	EstablishedYear int            `json:"established_year" validate:"omitempty,min=1800,max=2100"`
	Website         string         `json:"website" validate:"omitempty,url,max=255"`
	LogoFileID      string         `json:"logo_file_id" validate:"omitempty"`
	Metadata        types.Metadata `json:"metadata"`
}

func (r *CreateBuilderRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateBuilderRequest) ToBuilder(ctx context.Context) *builder.Builder {
	return &builder.Builder{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BUILDER),
		Name:            strings.TrimSpace(r.Name),
		Description:     r.Description,
		EstablishedYear: r.EstablishedYear,
		Website:         r.Website,
		LogoFileID:      r.LogoFileID,
		Metadata:        r.Metadata,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateBuilderRequest struct {
	Name            *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Description     *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	EstablishedYear *int           `json:"established_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	Website         *string        `json:"website,omitempty" validate:"omitempty,url,max=255"`
	LogoFileID      *string        `json:"logo_file_id,omitempty"`
	Metadata        types.Metadata `json:"metadata,omitempty"`
	Status          *types.Status  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateBuilderRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateBuilderRequest) Apply(b *builder.Builder) {
	if r.Name != nil {
		b.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.EstablishedYear != nil {
		b.EstablishedYear = *r.EstablishedYear
	}
	if r.Website != nil {
		b.Website = *r.Website
	}
	if r.LogoFileID != nil {
		b.LogoFileID = *r.LogoFileID
	}
	if r.Metadata != nil {
		b.Metadata = r.Metadata
	}
	if r.Status != nil {
		b.Status = *r.Status
	}
}

type BuilderResponse struct {
	*builder.Builder
}

type ListBuildersResponse = types.ListResponse[*BuilderResponse]

func NewBuilderResponse(b *builder.Builder) *BuilderResponse {
	return &BuilderResponse{Builder: b}
}

func NewListBuildersResponse(builders []*builder.Builder, total, page, limit int) *ListBuildersResponse {
	items := make([]*BuilderResponse, len(builders))
	for i, b := range builders {
		items[i] = NewBuilderResponse(b)
	}
	resp := types.NewListResponse(items, total, page, limit)
	return &resp
}
