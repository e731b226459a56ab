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

type BuilderHandler struct {
	service service.BuilderService
	logger  *logger.Logger
}

func NewBuilderHandler(service service.BuilderService, logger *logger.Logger) *BuilderHandler {
	return &BuilderHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a builder
// @Description Create a builder
// @Tags Builders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param builder body dto.CreateBuilderRequest true "Builder to create"
// @Success 201 {object} dto.BuilderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /builders [post]
func (h *BuilderHandler) CreateBuilder(c *gin.Context) {
	var req dto.CreateBuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateBuilder(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a builder
// @Description Get a builder by ID
// @Tags Builders
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Builder ID"
// @Success 200 {object} dto.BuilderResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /builders/{id} [get]
func (h *BuilderHandler) GetBuilder(c *gin.Context) {
	resp, err := h.service.GetBuilder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List builders
// @Description List builders with filtering and pagination
// @Tags Builders
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.BuilderFilter true "Filter"
// @Success 200 {object} dto.ListBuildersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /builders [get]
func (h *BuilderHandler) ListBuilders(c *gin.Context) {
	filter := types.NewDefaultBuilderFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListBuilders(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a builder
// @Description Update a builder
// @Tags Builders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Builder ID"
// @Param builder body dto.UpdateBuilderRequest true "Fields to update"
// @Success 200 {object} dto.BuilderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /builders/{id} [put]
func (h *BuilderHandler) UpdateBuilder(c *gin.Context) {
	var req dto.UpdateBuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateBuilder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a builder
// @Description Archive a builder
// @Tags Builders
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Builder ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /builders/{id} [delete]
func (h *BuilderHandler) DeleteBuilder(c *gin.Context) {
	if err := h.service.DeleteBuilder(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "builder deleted successfully"})
}
