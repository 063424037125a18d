package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
)

// FileStore keeps the catalog in a single JSON document on disk.
type FileStore struct {
	path string
	// mu serialises load-append-write within this process. Separate
	// processes sharing the file can still lose updates.
	mu sync.Mutex
}

// NewFileStore creates a store backed by the document at path. The file
// is not touched until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing document location.
func (s *FileStore) Path() string { return s.path }

// Load reads the whole document.
func (s *FileStore) Load(ctx context.Context) ([]catalog.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

// Save appends course and rewrites the document.
func (s *FileStore) Save(ctx context.Context, course catalog.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.read()
	if err != nil {
		return err
	}
	courses = append(courses, course)

	return s.write(courses)
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() ([]catalog.Course, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []catalog.Course{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.path, err)
	}

	var courses []catalog.Course
	if err := sonic.Unmarshal(data, &courses); err != nil {
		return nil, &ParseError{Source: s.path, Err: err}
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return courses, nil
}

func (s *FileStore) write(courses []catalog.Course) error {
	data, err := sonic.ConfigStd.MarshalIndent(courses, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod catalog: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace catalog %s: %w", s.path, err)
	}
	return nil
}
