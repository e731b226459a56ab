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

type PropertyTypeHandler struct {
	service service.PropertyTypeService
	logger  *logger.Logger
}

func NewPropertyTypeHandler(service service.PropertyTypeService, logger *logger.Logger) *PropertyTypeHandler {
	return &PropertyTypeHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a property type
// @Description Create a property type
// @Tags PropertyTypes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param property_type body dto.CreatePropertyTypeRequest true "Property type to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /property-types [post]
func (h *PropertyTypeHandler) CreatePropertyType(c *gin.Context) {
	var req dto.CreatePropertyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePropertyType(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a property type
// @Description Get a property type by ID
// @Tags PropertyTypes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property type ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /property-types/{id} [get]
func (h *PropertyTypeHandler) GetPropertyType(c *gin.Context) {
	resp, err := h.service.GetPropertyType(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List property types
// @Description List property types with filtering and pagination
// @Tags PropertyTypes
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /property-types [get]
func (h *PropertyTypeHandler) ListPropertyTypes(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPropertyTypes(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a property type
// @Description Update a property type
// @Tags PropertyTypes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property type ID"
// @Param property_type body dto.UpdatePropertyTypeRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /property-types/{id} [put]
func (h *PropertyTypeHandler) UpdatePropertyType(c *gin.Context) {
	var req dto.UpdatePropertyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePropertyType(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a property type
// @Description Archive a property type
// @Tags PropertyTypes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Property type ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /property-types/{id} [delete]
func (h *PropertyTypeHandler) DeletePropertyType(c *gin.Context) {
	if err := h.service.DeletePropertyType(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "property type deleted successfully"})
}

// @Summary Property type statistics
// @Description Aggregate counts for property types including per-category counts
// @Tags PropertyTypes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} master.Statistics
// @Router /property-types/statistics [get]
func (h *PropertyTypeHandler) GetPropertyTypeStatistics(c *gin.Context) {
	resp, err := h.service.GetPropertyTypeStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
