package v1

import (
	"fmt"
	"net/http"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/service"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/gin-gonic/gin"
)

// NumericMasterHandler serves towers, rooms and washrooms: one handler per
// type, all sharing the numeric record shape
type NumericMasterHandler struct {
	service  service.NumericMasterService
	logger   *logger.Logger
	resource string
}

func NewTowerHandler(service service.NumericMasterService, logger *logger.Logger) *NumericMasterHandler {
	return &NumericMasterHandler{service: service, logger: logger, resource: "tower"}
}

func NewRoomHandler(service service.NumericMasterService, logger *logger.Logger) *NumericMasterHandler {
	return &NumericMasterHandler{service: service, logger: logger, resource: "room"}
}

func NewWashroomHandler(service service.NumericMasterService, logger *logger.Logger) *NumericMasterHandler {
	return &NumericMasterHandler{service: service, logger: logger, resource: "washroom"}
}

// @Summary Create a numeric master record
// @Description Create a tower, room or washroom option
// @Tags NumericMasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param record body dto.CreateNumericMasterRequest true "Record to create"
// @Success 201 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /towers [post]
func (h *NumericMasterHandler) Create(c *gin.Context) {
	var req dto.CreateNumericMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a numeric master record
// @Description Get a tower, room or washroom option by ID
// @Tags NumericMasters
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /towers/{id} [get]
func (h *NumericMasterHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List numeric master records
// @Description List records with filtering and pagination
// @Tags NumericMasters
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.MasterFilter true "Filter"
// @Success 200 {object} dto.ListMastersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /towers [get]
func (h *NumericMasterHandler) List(c *gin.Context) {
	filter := types.NewDefaultMasterFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a numeric master record
// @Description Update a tower, room or washroom option
// @Tags NumericMasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Param record body dto.UpdateNumericMasterRequest true "Fields to update"
// @Success 200 {object} dto.MasterRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /towers/{id} [put]
func (h *NumericMasterHandler) Update(c *gin.Context) {
	var req dto.UpdateNumericMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a numeric master record
// @Description Archive a tower, room or washroom option
// @Tags NumericMasters
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Record ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /towers/{id} [delete]
func (h *NumericMasterHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("%s deleted successfully", h.resource),
	})
}

// @Summary Numeric master statistics
// @Description Aggregate counts and numeric value bounds
// @Tags NumericMasters
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NumericStatisticsResponse
// @Router /towers/statistics [get]
func (h *NumericMasterHandler) GetStatistics(c *gin.Context) {
	resp, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
