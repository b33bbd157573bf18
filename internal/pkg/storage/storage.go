package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded evidence and photos live.
type FileStorage interface {
	// Upload stores a file and returns its path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file.
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for the path.
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks whether the file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
