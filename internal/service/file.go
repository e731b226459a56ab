package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/h2non/filetype"
)

const maxUploadSizeBytes = 25 << 20 // 25 MiB

// FileService handles uploads to the object store and their records. Only
// the uploader of a file may delete it.
type FileService interface {
	Upload(ctx context.Context, req *dto.UploadFileRequest) (*dto.FileResponse, error)
	GetFile(ctx context.Context, id string) (*dto.FileResponse, error)
	ListFiles(ctx context.Context, filter *types.FileFilter) (*dto.ListFilesResponse, error)
	GetDownloadURL(ctx context.Context, id string) (string, error)
	DeleteFile(ctx context.Context, id string) error
}

type fileService struct {
	ServiceParams
}

func NewFileService(params ServiceParams) FileService {
	return &fileService{ServiceParams: params}
}

func (s *fileService) Upload(ctx context.Context, req *dto.UploadFileRequest) (*dto.FileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.S3 == nil {
		return nil, ierr.NewError("file storage is not configured").
			WithHint("File uploads are disabled").
			Mark(ierr.ErrInvalidOperation)
	}

	if len(req.Data) > maxUploadSizeBytes {
		return nil, ierr.NewErrorf("file exceeds %d bytes", maxUploadSizeBytes).
			WithHint("Uploaded file is too large").
			Mark(ierr.ErrValidation)
	}

	// Content type comes from the bytes, never from the client
	contentType := detectContentType(req.Data, req.FileName)

	id := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FILE)
	key := objectKeyFor(id, req.FileName)

	url, err := s.S3.Upload(ctx, key, contentType, req.Data)
	if err != nil {
		return nil, err
	}

	f := &file.File{
		ID:          id,
		FileName:    filepath.Base(req.FileName),
		Key:         key,
		URL:         url,
		ContentType: contentType,
		SizeBytes:   int64(len(req.Data)),
		UploadedBy:  types.GetUserID(ctx),
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}

	if err := s.FileRepo.Create(ctx, f); err != nil {
		// The object is already in the store; surface the record failure
		return nil, err
	}

	s.Logger.Infow("uploaded file",
		"id", f.ID,
		"key", f.Key,
		"size_bytes", f.SizeBytes,
		"content_type", f.ContentType,
	)
	return dto.NewFileResponse(f), nil
}

func (s *fileService) GetFile(ctx context.Context, id string) (*dto.FileResponse, error) {
	f, err := s.FileRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewFileResponse(f), nil
}

func (s *fileService) ListFiles(ctx context.Context, filter *types.FileFilter) (*dto.ListFilesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultFileFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter").
			Mark(ierr.ErrValidation)
	}

	files, err := s.FileRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.FileRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewListFilesResponse(files, total, filter.GetPage(), filter.GetLimit()), nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, id string) (string, error) {
	f, err := s.FileRepo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if s.S3 == nil {
		return f.URL, nil
	}
	return s.S3.GetPresignedURL(ctx, f.Key)
}

func (s *fileService) DeleteFile(ctx context.Context, id string) error {
	f, err := s.FileRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if f.UploadedBy != types.GetUserID(ctx) {
		return ierr.NewError("file belongs to another user").
			WithHint("Only the uploader can delete a file").
			Mark(ierr.ErrPermissionDenied)
	}

	if s.S3 != nil {
		if err := s.S3.Delete(ctx, f.Key); err != nil {
			return err
		}
	}

	f.Status = types.StatusArchived
	f.UpdatedAt = time.Now().UTC()
	f.UpdatedBy = types.GetUserID(ctx)

	if err := s.FileRepo.Update(ctx, f); err != nil {
		return err
	}

	s.Logger.Infow("deleted file", "id", id, "key", f.Key)
	return nil
}

func detectContentType(data []byte, fileName string) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

func objectKeyFor(id, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("uploads/%s%s", id, ext)
}
