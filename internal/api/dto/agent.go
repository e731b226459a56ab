package dto

import (
	"context"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
)

type CreateAgentRequest struct {
	Name          string         `json:"name" validate:"required,max=100"`
	Email         string         `json:"email" validate:"required,email,max=255"`
	Phone         string         `json:"phone" validate:"omitempty,max=20"`
	LicenseNumber string         `json:"license_number" validate:"omitempty,max=50"`
	AgencyName    string         `json:"agency_name" validate:"omitempty,max=100"`
	PhotoFileID   string         `json:"photo_file_id" validate:"omitempty"`
	Metadata      types.Metadata `json:"metadata"`
}

func (r *CreateAgentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateAgentRequest) ToAgent(ctx context.Context) *agent.Agent {
	return &agent.Agent{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AGENT),
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:         r.Phone,
		LicenseNumber: r.LicenseNumber,
		AgencyName:    strings.TrimSpace(r.AgencyName),
		PhotoFileID:   r.PhotoFileID,
		Metadata:      r.Metadata,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAgentRequest struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Email         *string        `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         *string        `json:"phone,omitempty" validate:"omitempty,max=20"`
	LicenseNumber *string        `json:"license_number,omitempty" validate:"omitempty,max=50"`
	AgencyName    *string        `json:"agency_name,omitempty" validate:"omitempty,max=100"`
	PhotoFileID   *string        `json:"photo_file_id,omitempty"`
	Metadata      types.Metadata `json:"metadata,omitempty"`
	Status        *types.Status  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateAgentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateAgentRequest) Apply(a *agent.Agent) {
	if r.Name != nil {
		a.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		a.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		a.Phone = *r.Phone
	}
	if r.LicenseNumber != nil {
		a.LicenseNumber = *r.LicenseNumber
	}
	if r.AgencyName != nil {
		a.AgencyName = strings.TrimSpace(*r.AgencyName)
	}
	if r.PhotoFileID != nil {
		a.PhotoFileID = *r.PhotoFileID
	}
	if r.Metadata != nil {
		a.Metadata = r.Metadata
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
}

type AgentResponse struct {
	*agent.Agent
}

type ListAgentsResponse = types.ListResponse[*AgentResponse]

func NewAgentResponse(a *agent.Agent) *AgentResponse {
	return &AgentResponse{Agent: a}
}

func NewListAgentsResponse(agents []*agent.Agent, total, page, limit int) *ListAgentsResponse {
	items := make([]*AgentResponse, len(agents))
	for i, a := range agents {
		items[i] = NewAgentResponse(a)
	}
	resp := types.NewListResponse(items, total, page, limit)
	return &resp
}
