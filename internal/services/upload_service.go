package services

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Bateyjosue/marketplace/internal/storage"
)

// ErrUploadFailed is the opaque condition surfaced for any upload
// failure; the underlying cause is logged, not returned.
var ErrUploadFailed = errors.New("upload failed")

// UploadService ingests user-selected image files into the content
// bucket and returns the public URL they will be served from.
type UploadService struct {
	store storage.ObjectStore
}

// NewUploadService creates a new UploadService.
func NewUploadService(store storage.ObjectStore) *UploadService {
	return &UploadService{
		store: store,
	}
}

// Upload writes one file to the bucket under a randomized key that
// keeps the original extension, and returns the public URL for it. The
// user-supplied name is never trusted as a storage key. There is no
// cleanup path: if the caller's listing creation fails afterwards, the
// object stays behind.
func (s *UploadService) Upload(ctx context.Context, filename string, contentType string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := uuid.New().String() + ext

	if err := s.store.Put(ctx, key, contentType, file); err != nil {
		log.Printf("Error uploading image %s: %v", key, err)
		return "", ErrUploadFailed
	}
	return s.store.PublicURL(key), nil
}
