package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"zhanyixia/pkg/cloudinary"

	"github.com/google/uuid"
)

// MaxImageBytes is the upload size cap (5 MiB).
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrNotAnImage   = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds 5MB limit")
)

// ValidateImage checks MIME type and size before anything is uploaded.
// A rejected file causes no state change.
func ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}

// ObjectName builds a collision-resistant storage name from the upload
// timestamp, a short random token and the original extension,
// e.g. "1717000000000-a1b2c3.png".
func ObjectName(originalName string, now time.Time) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	ext := strings.TrimPrefix(path.Ext(originalName), ".")
	if ext == "" {
		return fmt.Sprintf("%d-%s", now.UnixMilli(), token)
	}
	return fmt.Sprintf("%d-%s.%s", now.UnixMilli(), token, ext)
}

// UploadService stages service images into object storage under a folder
// namespaced by resource type and returns the public URL.
type UploadService struct {
	cloud  cloudinary.Client
	folder string
}

func NewUploadService(cloud cloudinary.Client, folder string) *UploadService {
	return &UploadService{cloud: cloud, folder: folder}
}

// UploadServiceImage validates and uploads one image for the services
// resource. Returns the stored public URL.
func (s *UploadService) UploadServiceImage(ctx context.Context, file io.Reader, originalName, contentType string, size int64) (string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", err
	}
	folder := s.folder + "/services"
	publicID := ObjectName(originalName, time.Now())
	url, _, err := s.cloud.UploadImage(ctx, file, folder, publicID)
	if err != nil {
		return "", err
	}
	return url, nil
}

// RemoveImage deletes a stored image by its public URL. Blank URLs are a
// no-op so callers can pass whatever the row holds.
func (s *UploadService) RemoveImage(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	return s.cloud.DeleteByURL(ctx, url)
}
