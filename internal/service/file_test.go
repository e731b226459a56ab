package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/api/dto"
	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/testutil"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/stretchr/testify/suite"
)

// Minimal valid PNG header, enough for magic-byte detection
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

type FileServiceSuite struct {
	testutil.BaseServiceTestSuite
	service FileService
}

func TestFileService(t *testing.T) {
	suite.Run(t, new(FileServiceSuite))
}

func (s *FileServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		S3:          s.GetS3(),
		Auth:        s.GetAuth(),
		Cache:       s.GetCache(),
		MasterRepo:  s.GetStores().MasterRepo,
		BuilderRepo: s.GetStores().BuilderRepo,
		AgentRepo:   s.GetStores().AgentRepo,
		ProjectRepo: s.GetStores().ProjectRepo,
		FileRepo:    s.GetStores().FileRepo,
	}
	s.service = NewFileService(params)
}

func (s *FileServiceSuite) TestUpload() {
	resp, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName:   "floorplan.png",
		Data:       pngBytes,
		EntityType: types.FileEntityProject,
		EntityID:   "proj_123",
	})
	s.NoError(err)
	s.True(strings.HasPrefix(resp.ID, "file_"))
	s.Equal("floorplan.png", resp.FileName)
	s.Equal("image/png", resp.ContentType)
	s.Equal(int64(len(pngBytes)), resp.SizeBytes)
	s.Equal(types.DefaultUserID, resp.UploadedBy)
	s.True(s.GetMockS3().HasObject(resp.Key))
}

func (s *FileServiceSuite) TestUploadContentTypeFallback() {
	resp, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "listing.csv",
		Data:     []byte("id,name\n1,Mumbai\n"),
	})
	s.NoError(err)
	s.Equal("text/csv", resp.ContentType)

	resp, err = s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "blob.bin",
		Data:     []byte{0x00, 0x01, 0x02},
	})
	s.NoError(err)
	s.Equal("application/octet-stream", resp.ContentType)
}

func (s *FileServiceSuite) TestUploadValidation() {
	_, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "empty.png",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName:   "file.png",
		Data:       pngBytes,
		EntityType: "invoice",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *FileServiceSuite) TestGetDownloadURL() {
	uploaded, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "brochure.pdf",
		Data:     []byte("%PDF-1.7 fake"),
	})
	s.Require().NoError(err)

	url, err := s.service.GetDownloadURL(s.GetContext(), uploaded.ID)
	s.NoError(err)
	s.Contains(url, uploaded.Key)
}

func (s *FileServiceSuite) TestDeleteFile() {
	uploaded, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "floorplan.png",
		Data:     pngBytes,
	})
	s.Require().NoError(err)

	err = s.service.DeleteFile(s.GetContext(), uploaded.ID)
	s.NoError(err)
	s.False(s.GetMockS3().HasObject(uploaded.Key))

	_, err = s.service.GetFile(s.GetContext(), uploaded.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *FileServiceSuite) TestDeleteFileWrongUser() {
	uploaded, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
		FileName: "floorplan.png",
		Data:     pngBytes,
	})
	s.Require().NoError(err)

	otherCtx := context.WithValue(s.GetContext(), types.CtxUserID, "user_other")
	err = s.service.DeleteFile(otherCtx, uploaded.ID)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))

	// The object and the record stay
	s.True(s.GetMockS3().HasObject(uploaded.Key))
	_, err = s.service.GetFile(s.GetContext(), uploaded.ID)
	s.NoError(err)
}

func (s *FileServiceSuite) TestListFilesByEntity() {
	for _, f := range []struct {
		name   string
		entity types.FileEntityType
		id     string
	}{
		{"a.png", types.FileEntityProject, "proj_1"},
		{"b.png", types.FileEntityProject, "proj_2"},
		{"c.png", types.FileEntityBuilder, "bldr_1"},
	} {
		_, err := s.service.Upload(s.GetContext(), &dto.UploadFileRequest{
			FileName:   f.name,
			Data:       pngBytes,
			EntityType: f.entity,
			EntityID:   f.id,
		})
		s.Require().NoError(err)
	}

	filter := types.NewDefaultFileFilter()
	filter.EntityType = types.FileEntityProject

	resp, err := s.service.ListFiles(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)

	filter = types.NewDefaultFileFilter()
	filter.EntityType = types.FileEntityProject
	filter.EntityID = "proj_1"

	resp, err = s.service.ListFiles(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("a.png", resp.Items[0].FileName)
}
