package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ondrasimku/upload-service-go/internal/storage"
)

const timestampLayout = "20060102_150405"

type LocalStorage struct {
	baseDir string
	now     func() time.Time
}

type Option func(*LocalStorage)

func WithClock(now func() time.Time) Option {
	return func(s *LocalStorage) {
		s.now = now
	}
}

// NewLocalStorage does not touch the filesystem; the directory is created on
// first use.
func NewLocalStorage(baseDir string, opts ...Option) *LocalStorage {
	s := &LocalStorage{
		baseDir: baseDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalStorage) Root() string {
	return s.baseDir
}

func (s *LocalStorage) Ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dir, err := os.Open(s.baseDir)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	stat, err := dir.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%s is not a directory", s.baseDir)
	}

	return nil
}

func (s *LocalStorage) Save(ctx context.Context, r io.Reader, opts storage.SaveOptions) (storage.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return storage.FileInfo{}, err
	}

	if opts.Name == "" || opts.Name != filepath.Base(opts.Name) || opts.Name == "." || opts.Name == ".." {
		return storage.FileInfo{}, fmt.Errorf("invalid file name %q", opts.Name)
	}

	file, name, err := s.create(opts.Name)
	if err != nil {
		return storage.FileInfo{}, fmt.Errorf("failed to create file: %w", err)
	}

	filePath := filepath.Join(s.baseDir, name)

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(filePath)
		return storage.FileInfo{}, fmt.Errorf("failed to write file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(filePath)
		return storage.FileInfo{}, fmt.Errorf("failed to write file: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return storage.FileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}

	return storage.FileInfo{
		Name:    name,
		Path:    filePath,
		Size:    stat.Size(),
		ModTime: stat.ModTime(),
	}, nil
}

// create opens name exclusively. When it is taken, the name gets a local
// timestamp suffix, and if that is taken too, a random one on top.
func (s *LocalStorage) create(name string) (*os.File, string, error) {
	stamped := insertSuffix(name, s.now().Format(timestampLayout))
	candidates := []string{
		name,
		stamped,
		insertSuffix(stamped, uuid.New().String()[:8]),
	}

	for _, candidate := range candidates {
		file, err := os.OpenFile(filepath.Join(s.baseDir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return file, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}

	return nil, "", fmt.Errorf("no free name for %q", name)
}

func insertSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}

// List returns the regular files directly under the base directory, most
// recently modified first. A missing directory yields an empty list.
func (s *LocalStorage) List(ctx context.Context) ([]storage.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []storage.FileInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]storage.FileInfo, 0, len(entries))
	for _, entry := range entries {
		filePath := filepath.Join(s.baseDir, entry.Name())

		stat, err := os.Stat(filePath)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}

		files = append(files, storage.FileInfo{
			Name:    entry.Name(),
			Path:    filePath,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files, nil
}
