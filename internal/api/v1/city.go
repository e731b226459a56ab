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

type CityHandler struct {
	service service.CityService
	logger  *logger.Logger
}

func NewCityHandler(service service.CityService, logger *logger.Logger) *CityHandler {
	return &CityHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a city
// @Description Create a city
// @Tags Cities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city body dto.CreateCityRequest true "City to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /cities [post]
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCity(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a city
// @Description Get a city by ID
// @Tags Cities
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "City ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cities/{id} [get]
func (h *CityHandler) GetCity(c *gin.Context) {
	resp, err := h.service.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List cities
// @Description List cities with filtering and pagination
// @Tags Cities
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /cities [get]
func (h *CityHandler) ListCities(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCities(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Find nearby cities
// @Description List cities within a radius of a point
// @Tags Cities
// @Produce json
// @Security ApiKeyAuth
// @Param longitude query number true "Longitude"
// @Param latitude query number true "Latitude"
// @Param radius_km query number true "Radius in kilometres"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /cities/near [get]
func (h *CityHandler) NearbyCities(c *gin.Context) {
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

	resp, err := h.service.ListCities(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a city
// @Description Update a city
// @Tags Cities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "City ID"
// @Param city body dto.UpdateCityRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cities/{id} [put]
func (h *CityHandler) UpdateCity(c *gin.Context) {
	var req dto.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a city
// @Description Archive a city. Its locations are not affected.
// @Tags Cities
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "City ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /cities/{id} [delete]
func (h *CityHandler) DeleteCity(c *gin.Context) {
	if err := h.service.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "city deleted successfully"})
}

// @Summary City statistics
// @Description Aggregate counts and project price statistics for cities
// @Tags Cities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.CityStatisticsResponse
// @Router /cities/statistics [get]
func (h *CityHandler) GetCityStatistics(c *gin.Context) {
	resp, err := h.service.GetCityStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
