package v1

import (
	"io"
	"net/http"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/service"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	service service.FileService
	logger  *logger.Logger
}

func NewFileHandler(service service.FileService, logger *logger.Logger) *FileHandler {
	return &FileHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Upload a file
// @Description Upload a file as multipart form data. Content type is detected from the bytes.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "File to upload"
// @Param entity_type formData string false "Entity the file belongs to (project, builder, agent, master)"
// @Param entity_id formData string false "Entity ID"
// @Success 201 {object} dto.FileResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A file form field is required").
			Mark(ierr.ErrValidation))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	req := &dto.UploadFileRequest{
		FileName:   fileHeader.Filename,
		Data:       data,
		EntityType: types.FileEntityType(c.PostForm("entity_type")),
		EntityID:   c.PostForm("entity_id"),
	}

	resp, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a file record
// @Description Get a file record by ID
// @Tags Files
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	resp, err := h.service.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List files
// @Description List file records with filtering and pagination
// @Tags Files
// @Produce json
// @Security ApiKeyAuth
// @Param filter query types.FileFilter true "Filter"
// @Success 200 {object} dto.ListFilesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	filter := types.NewDefaultFileFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListFiles(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a download URL
// @Description Get a time-limited download URL for a file
// @Tags Files
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "File ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Router /files/{id}/download [get]
func (h *FileHandler) GetDownloadURL(c *gin.Context) {
	url, err := h.service.GetDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// @Summary Delete a file
// @Description Delete a file. Only the uploader may delete it.
// @Tags Files
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "File ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /files/{id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.service.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "file deleted successfully"})
}
