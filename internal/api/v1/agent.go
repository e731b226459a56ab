package v1

import (
	"net/http"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/service"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	service service.AgentService
	logger  *logger.Logger
}

func NewAgentHandler(service service.AgentService, logger *logger.Logger) *AgentHandler {
	return &AgentHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create an agent
// @Description Create an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param agent body dto.CreateAgentRequest true "Agent to create"
// @Success 201 {object} dto.AgentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAgent(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an agent
// @Description Get an agent by ID
// @Tags Agents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	resp, err := h.service.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List agents
// @Description List agents with filtering and pagination
// @Tags Agents
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.AgentFilter true "Filter"
// @Success 200 {object} dto.ListAgentsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	filter := types.NewDefaultAgentFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListAgents(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update an agent
// @Description Update an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Agent ID"
// @Param agent body dto.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} dto.AgentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAgent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an agent
// @Description Archive an agent
// @Tags Agents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	if err := h.service.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "agent deleted successfully"})
}
