package storage

import (
	"context"
	"io"
	"time"
)

type SaveOptions struct {
	// Name is the already sanitized file name. Implementations may store
	// the payload under a different name to avoid overwriting.
	Name string
}

type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

type Storage interface {
	Root() string
	Ensure(ctx context.Context) error
	Save(ctx context.Context, r io.Reader, opts SaveOptions) (FileInfo, error)
	List(ctx context.Context) ([]FileInfo, error)
}
