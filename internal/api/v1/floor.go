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

type FloorHandler struct {
	service service.FloorService
	logger  *logger.Logger
}

func NewFloorHandler(service service.FloorService, logger *logger.Logger) *FloorHandler {
	return &FloorHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a floor
// @Description Create a floor level. The display name is derived from the floor number.
// @Tags Floors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param floor body dto.CreateFloorRequest true "Floor to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /floors [post]
func (h *FloorHandler) CreateFloor(c *gin.Context) {
	var req dto.CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateFloor(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a floor
// @Description Get a floor by ID
// @Tags Floors
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Floor ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /floors/{id} [get]
func (h *FloorHandler) GetFloor(c *gin.Context) {
	resp, err := h.service.GetFloor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List floors
// @Description List floors with filtering and pagination. Use min_value/max_value for ranges.
// @Tags Floors
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /floors [get]
func (h *FloorHandler) ListFloors(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListFloors(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a floor
// @Description Update a floor. Changing the floor number re-derives the display name.
// @Tags Floors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Floor ID"
// @Param floor body dto.UpdateFloorRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /floors/{id} [put]
func (h *FloorHandler) UpdateFloor(c *gin.Context) {
	var req dto.UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateFloor(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a floor
// @Description Archive a floor
// @Tags Floors
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Floor ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /floors/{id} [delete]
func (h *FloorHandler) DeleteFloor(c *gin.Context) {
	if err := h.service.DeleteFloor(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "floor deleted successfully"})
}

// @Summary Floor statistics
// @Description Aggregate counts and floor number bounds
// @Tags Floors
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NumericStatisticsResponse
// @Router /floors/statistics [get]
func (h *FloorHandler) GetFloorStatistics(c *gin.Context) {
	resp, err := h.service.GetFloorStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
