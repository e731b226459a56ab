package dto

import (
	"context"
	"strings"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	Name            string              `json:"name" validate:"required,max=150"`
	Description     string              `json:"description" validate:"omitempty,max=5000"`
	BuilderID       string              `json:"builder_id" validate:"required"`
	CityID          string              `json:"city_id" validate:"required"`
	LocationID      string              `json:"location_id" validate:"omitempty"`
	ProjectStatus   types.ProjectStatus `json:"project_status" validate:"required"`
	PriceMin        *decimal.Decimal    `json:"price_min"`
	PriceMax        *decimal.Decimal    `json:"price_max"`
	PossessionDate  *time.Time          `json:"possession_date"`
	ReraNumber      string              `json:"rera_number" validate:"omitempty,max=50"`
	AmenityIDs      types.StringList    `json:"amenity_ids"`
	PropertyTypeIDs types.StringList    `json:"property_type_ids"`
	Metadata        types.Metadata      `json:"metadata"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.ProjectStatus.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid project status").
			Mark(ierr.ErrValidation)
	}
	if r.PriceMin != nil && r.PriceMin.IsNegative() {
		return ierr.NewError("price_min cannot be negative").
			WithHint("price_min cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if r.PriceMin != nil && r.PriceMax != nil && r.PriceMax.LessThan(*r.PriceMin) {
		return ierr.NewError("price_max must not be less than price_min").
			WithHint("price_max must not be less than price_min").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	return &project.Project{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		Name:            strings.TrimSpace(r.Name),
		Code:            types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_PROJECT),
		Description:     r.Description,
		BuilderID:       r.BuilderID,
		CityID:          r.CityID,
		LocationID:      r.LocationID,
		ProjectStatus:   r.ProjectStatus,
		PriceMin:        r.PriceMin,
		PriceMax:        r.PriceMax,
		PossessionDate:  r.PossessionDate,
		ReraNumber:      r.ReraNumber,
		AmenityIDs:      r.AmenityIDs,
		PropertyTypeIDs: r.PropertyTypeIDs,
		Metadata:        r.Metadata,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateProjectRequest struct {
	Name            *string              `json:"name,omitempty" validate:"omitempty,max=150"`
	Description     *string              `json:"description,omitempty" validate:"omitempty,max=5000"`
	LocationID      *string              `json:"location_id,omitempty"`
	ProjectStatus   *types.ProjectStatus `json:"project_status,omitempty"`
	PriceMin        *decimal.Decimal     `json:"price_min,omitempty"`
	PriceMax        *decimal.Decimal     `json:"price_max,omitempty"`
	PossessionDate  *time.Time           `json:"possession_date,omitempty"`
	ReraNumber      *string              `json:"rera_number,omitempty" validate:"omitempty,max=50"`
	AmenityIDs      types.StringList     `json:"amenity_ids,omitempty"`
	PropertyTypeIDs types.StringList     `json:"property_type_ids,omitempty"`
	Metadata        types.Metadata       `json:"metadata,omitempty"`
	Status          *types.Status        `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateProjectRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ProjectStatus != nil {
		if err := r.ProjectStatus.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid project status").
				Mark(ierr.ErrValidation)
		}
	}
	if r.PriceMin != nil && r.PriceMax != nil && r.PriceMax.LessThan(*r.PriceMin) {
		return ierr.NewError("price_max must not be less than price_min").
			WithHint("price_max must not be less than price_min").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateProjectRequest) Apply(p *project.Project) {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.LocationID != nil {
		p.LocationID = *r.LocationID
	}
	if r.ProjectStatus != nil {
		p.ProjectStatus = *r.ProjectStatus
	}
	if r.PriceMin != nil {
		p.PriceMin = r.PriceMin
	}
	if r.PriceMax != nil {
		p.PriceMax = r.PriceMax
	}
	if r.PossessionDate != nil {
		p.PossessionDate = r.PossessionDate
	}
	if r.ReraNumber != nil {
		p.ReraNumber = *r.ReraNumber
	}
	if r.AmenityIDs != nil {
		p.AmenityIDs = r.AmenityIDs
	}
	if r.PropertyTypeIDs != nil {
		p.PropertyTypeIDs = r.PropertyTypeIDs
	}
	if r.Metadata != nil {
		p.Metadata = r.Metadata
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
}

type AddUnitConfigurationRequest struct {
	Label          string           `json:"label" validate:"required,max=50"`
	Bedrooms       int              `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms      int              `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	CarpetAreaSqft float64          `json:"carpet_area_sqft" validate:"omitempty,min=0"`
	Price          *decimal.Decimal `json:"price"`
}

func (r *AddUnitConfigurationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price != nil && r.Price.IsNegative() {
		return ierr.NewError("price cannot be negative").
			WithHint("price cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *AddUnitConfigurationRequest) ToUnitConfiguration(ctx context.Context, projectID string) *project.UnitConfiguration {
	return &project.UnitConfiguration{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_UNIT_CONFIG),
		ProjectID:      projectID,
		Label:          strings.TrimSpace(r.Label),
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		CarpetAreaSqft: r.CarpetAreaSqft,
		Price:          r.Price,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type AddProjectMediaRequest struct {
	Kind      types.MediaKind `json:"kind" validate:"required"`
	URL       string          `json:"url" validate:"required,url,max=1024"`
	Caption   string          `json:"caption" validate:"omitempty,max=255"`
	SortOrder int             `json:"sort_order"`
}

func (r *AddProjectMediaRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Kind.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid media kind").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *AddProjectMediaRequest) ToMedia(ctx context.Context, projectID string) *project.Media {
	return &project.Media{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT_MEDIA),
		ProjectID: projectID,
		Kind:      r.Kind,
		URL:       r.URL,
		Caption:   r.Caption,
		SortOrder: r.SortOrder,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type AddProjectDocumentRequest struct {
	Title        string `json:"title" validate:"required,max=150"`
	FileID       string `json:"file_id" validate:"required"`
	DocumentType string `json:"document_type" validate:"omitempty,max=50"`
}

func (r *AddProjectDocumentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *AddProjectDocumentRequest) ToDocument(ctx context.Context, projectID string) *project.Document {
	return &project.Document{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT_DOC),
		ProjectID:    projectID,
		Title:        strings.TrimSpace(r.Title),
		FileID:       r.FileID,
		DocumentType: r.DocumentType,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type ProjectResponse struct {
	*project.Project
}

type ListProjectsResponse = types.ListResponse[*ProjectResponse]

func NewProjectResponse(p *project.Project) *ProjectResponse {
	return &ProjectResponse{Project: p}
}

func NewListProjectsResponse(projects []*project.Project, total, page, limit int) *ListProjectsResponse {
	items := make([]*ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = NewProjectResponse(p)
	}
	resp := types.NewListResponse(items, total, page, limit)
	return &resp
}
