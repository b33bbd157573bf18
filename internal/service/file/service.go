package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/storage"
)

// FileService stores attendance proof photos and permit evidence files. The
// core treats the stored blobs as opaque; it only ever carries their URLs.
type FileService interface {
	// UploadAttendancePhoto stores a clock-in/out proof photo. clockType is
	// "CLOCK_IN" or "CLOCK_OUT".
	UploadAttendancePhoto(ctx context.Context, userID string, date string, file io.Reader, filename string, clockType string) (string, error)

	// UploadPermitEvidence stores a permit's supporting document.
	UploadPermitEvidence(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

var photoExts = []string{".jpg", ".jpeg", ".png"}
var evidenceExts = []string{".jpg", ".jpeg", ".png", ".pdf"}

func contentTypeFor(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}

func validateExt(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", fmt.Errorf("invalid file type %q: only %s allowed", ext, strings.Join(allowed, ", "))
}

func (s *fileServiceImpl) UploadAttendancePhoto(ctx context.Context, userID string, date string, file io.Reader, filename string, clockType string) (string, error) {
	ext, err := validateExt(filename, photoExts)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s-%s-%s%s", date, strings.ToLower(clockType), uuid.New().String(), ext)
	path := filepath.Join("attendance", userID, newFilename)

	stored, err := s.storage.Upload(ctx, file, path, contentTypeFor(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance photo: %w", err)
	}
	return stored, nil
}

func (s *fileServiceImpl) UploadPermitEvidence(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, evidenceExts)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join("permits", userID, newFilename)

	stored, err := s.storage.Upload(ctx, file, path, contentTypeFor(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload permit evidence: %w", err)
	}
	return stored, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
