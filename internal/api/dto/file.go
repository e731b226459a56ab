package dto

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// UploadFileRequest describes an upload. Data is the raw object body; the
// content type is detected from it, not trusted from the client.
type UploadFileRequest struct {
	FileName   string
	Data       []byte
	EntityType types.FileEntityType
	EntityID   string
}

func (r *UploadFileRequest) Validate() error {
	if r.FileName == "" {
		return ierr.NewError("file name is required").
			WithHint("File name is required").
			Mark(ierr.ErrValidation)
	}
	if len(r.Data) == 0 {
		return ierr.NewError("file is empty").
			WithHint("Uploaded file must not be empty").
			Mark(ierr.ErrValidation)
	}
	if r.EntityType != "" {
		if err := r.EntityType.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid entity type").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

type FileResponse struct {
	*file.File
}

type ListFilesResponse = types.ListResponse[*FileResponse]

func NewFileResponse(f *file.File) *FileResponse {
	return &FileResponse{File: f}
}

func NewListFilesResponse(files []*file.File, total, page, limit int) *ListFilesResponse {
	items := make([]*FileResponse, len(files))
	for i, f := range files {
		items[i] = NewFileResponse(f)
	}
	resp := types.NewListResponse(items, total, page, limit)
	return &resp
}
