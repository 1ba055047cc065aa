package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when nothing is stored at the path.
var ErrNotFound = errors.New("storage: object not found")

// ErrInvalidPath is returned for paths that are absolute or escape the storage root.
var ErrInvalidPath = errors.New("storage: invalid path")

// Storage defines the interface for file storage operations.
// Paths are slash separated and relative to the storage root.
type Storage interface {
	// Save writes content to path, replacing anything already there.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the object at path. The caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object at path. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error
}
