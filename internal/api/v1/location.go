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

type LocationHandler struct {
	service service.LocationService
	logger  *logger.Logger
}

func NewLocationHandler(service service.LocationService, logger *logger.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a location
// @Description Create a locality under an existing city
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body dto.CreateLocationRequest true "Location to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a location
// @Description Get a location by ID
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	resp, err := h.service.GetLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List locations
// @Description List locations with filtering and pagination. Use parent_id to scope to a city.
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListLocations(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Find nearby locations
// @Description List locations within a radius of a point
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param longitude query number true "Longitude"
// @Param latitude query number true "Latitude"
// @Param radius_km query number true "Radius in kilometres"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /locations/near [get]
func (h *LocationHandler) NearbyLocations(c *gin.Context) {
	var near types.GeoNearFilter
	if err := c.ShouldBindQuery(&near); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	filter.Near = &near

	resp, err := h.service.ListLocations(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a location
// @Description Update a location. The parent city cannot change.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLocation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a location
// @Description Archive a location
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	if err := h.service.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "location deleted successfully"})
}

// @Summary Location statistics
// @Description Aggregate counts for locations
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} master.Statistics
// @Router /locations/statistics [get]
func (h *LocationHandler) GetLocationStatistics(c *gin.Context) {
	resp, err := h.service.GetLocationStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
