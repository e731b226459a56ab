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

type AmenityHandler struct {
	service service.AmenityService
	logger  *logger.Logger
}

func NewAmenityHandler(service service.AmenityService, logger *logger.Logger) *AmenityHandler {
	return &AmenityHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create an amenity
// @Description Create an amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param amenity body dto.CreateAmenityRequest true "Amenity to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /amenities [post]
func (h *AmenityHandler) CreateAmenity(c *gin.Context) {
	var req dto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAmenity(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an amenity
// @Description Get an amenity by ID
// @Tags Amenities
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /amenities/{id} [get]
func (h *AmenityHandler) GetAmenity(c *gin.Context) {
	resp, err := h.service.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List amenities
// @Description List amenities with filtering and pagination. Use category to scope.
// @Tags Amenities
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /amenities [get]
func (h *AmenityHandler) ListAmenities(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListAmenities(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update an amenity
// @Description Update an amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Amenity ID"
// @Param amenity body dto.UpdateAmenityRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /amenities/{id} [put]
func (h *AmenityHandler) UpdateAmenity(c *gin.Context) {
	var req dto.UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAmenity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an amenity
// @Description Archive an amenity
// @Tags Amenities
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /amenities/{id} [delete]
func (h *AmenityHandler) DeleteAmenity(c *gin.Context) {
	if err := h.service.DeleteAmenity(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "amenity deleted successfully"})
}

// @Summary Amenity statistics
// @Description Aggregate counts for amenities including per-category counts
// @Tags Amenities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} master.Statistics
// @Router /amenities/statistics [get]
func (h *AmenityHandler) GetAmenityStatistics(c *gin.Context) {
	resp, err := h.service.GetAmenityStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
