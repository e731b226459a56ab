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

type ProjectHandler struct {
	service service.ProjectService
	logger  *logger.Logger
}

func NewProjectHandler(service service.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a project
// @Description Create a project referencing a builder and a city
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param project body dto.CreateProjectRequest true "Project to create"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProject(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a project
// @Description Get a project with its unit configurations, media and documents
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	resp, err := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List projects
// @Description List projects with filtering and pagination
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.ProjectFilter true "Filter"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := types.NewDefaultProjectFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update a project
// @Description Update a project. Builder and city references cannot change.
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a project
// @Description Archive a project
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "project deleted successfully"})
}

// @Summary Project statistics
// @Description Aggregate counts and price statistics for projects
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} project.Statistics
// @Router /projects/statistics [get]
func (h *ProjectHandler) GetProjectStatistics(c *gin.Context) {
	resp, err := h.service.GetProjectStatistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add a unit configuration
// @Description Add a unit configuration to a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param unit body dto.AddUnitConfigurationRequest true "Unit configuration"
// @Success 201 {object} project.UnitConfiguration
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/units [post]
func (h *ProjectHandler) AddUnitConfiguration(c *gin.Context) {
	var req dto.AddUnitConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	unit, err := h.service.AddUnitConfiguration(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// @Summary Remove a unit configuration
// @Description Remove a unit configuration from a project
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param unit_id path string true "Unit configuration ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/units/{unit_id} [delete]
func (h *ProjectHandler) RemoveUnitConfiguration(c *gin.Context) {
	if err := h.service.RemoveUnitConfiguration(c.Request.Context(), c.Param("id"), c.Param("unit_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "unit configuration removed successfully"})
}

// @Summary Add media
// @Description Add a media entry to a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param media body dto.AddProjectMediaRequest true "Media entry"
// @Success 201 {object} project.Media
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/media [post]
func (h *ProjectHandler) AddMedia(c *gin.Context) {
	var req dto.AddProjectMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	media, err := h.service.AddMedia(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// @Summary Remove media
// @Description Remove a media entry from a project
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param media_id path string true "Media ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/media/{media_id} [delete]
func (h *ProjectHandler) RemoveMedia(c *gin.Context) {
	if err := h.service.RemoveMedia(c.Request.Context(), c.Param("id"), c.Param("media_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "media removed successfully"})
}

// @Summary Add a document
// @Description Link an uploaded file to a project as a document
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param document body dto.AddProjectDocumentRequest true "Document"
// @Success 201 {object} project.Document
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/documents [post]
func (h *ProjectHandler) AddDocument(c *gin.Context) {
	var req dto.AddProjectDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	document, err := h.service.AddDocument(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

// @Summary Remove a document
// @Description Remove a document from a project
// @Tags Projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Project ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id}/documents/{document_id} [delete]
func (h *ProjectHandler) RemoveDocument(c *gin.Context) {
	if err := h.service.RemoveDocument(c.Request.Context(), c.Param("id"), c.Param("document_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "document removed successfully"})
}
