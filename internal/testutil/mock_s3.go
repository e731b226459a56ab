package testutil

import (
	"context"
	"sync"

	ierr "github.com/Trela-Inc/trelaxadminadmin-sub000/internal/errors"
)

// MockS3Service keeps uploaded objects in memory
type MockS3Service struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		objects: make(map[string][]byte),
	}
}

func (s *MockS3Service) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return "https://test-bucket.s3.amazonaws.com/" + key, nil
}

func (s *MockS3Service) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; !exists {
		return ierr.NewErrorf("object %s was not found", key).
			WithHint("The requested object does not exist").
			Mark(ierr.ErrNotFound)
	}
	delete(s.objects, key)
	return nil
}

func (s *MockS3Service) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.objects[key]
	return exists, nil
}

func (s *MockS3Service) GetPresignedURL(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.objects[key]; !exists {
		return "", ierr.NewErrorf("object %s was not found", key).
			WithHint("The requested object does not exist").
			Mark(ierr.ErrNotFound)
	}
	return "https://test-bucket.s3.amazonaws.com/" + key + "?signed=true", nil
}

// HasObject reports whether a key is stored
func (s *MockS3Service) HasObject(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.objects[key]
	return exists
}

// Clear removes all stored objects
func (s *MockS3Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[string][]byte)
}
