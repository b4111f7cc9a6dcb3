package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when the named file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrTooLarge is returned when an upload exceeds the configured cap.
	ErrTooLarge = errors.New("file exceeds maximum upload size")
	// ErrBadName is returned for names that could escape the uploads dir.
	ErrBadName = errors.New("invalid file name")
)

// Store writes uploads to a single directory and indexes its contents.
type Store struct {
	dir      string
	maxBytes int64

	mu    sync.RWMutex
	names map[string]struct{}
}

// NewStore creates the uploads directory if needed and indexes any files
// already present.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	s := &Store{
		dir:      dir,
		maxBytes: maxBytes,
		names:    make(map[string]struct{}),
	}
	if err := s.rescan(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the uploads directory path.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) rescan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read uploads directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			s.names[entry.Name()] = struct{}{}
		}
	}
	return nil
}

// maxNameAttempts bounds how many suffixed names Save tries when uploads
// land in the same millisecond.
const maxNameAttempts = 100

// Save writes the reader's content under a generated name derived from the
// original file's extension. Content beyond the size cap aborts the write
// and removes the partial file.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	stamp := time.Now().UnixMilli()

	// O_EXCL arbitrates same-millisecond uploads; a taken name gets a
	// numeric suffix instead of failing the request.
	var (
		f    *os.File
		name string
		path string
	)
	for attempt := 0; ; attempt++ {
		name = fmt.Sprintf("image-%d%s", stamp, ext)
		if attempt > 0 {
			name = fmt.Sprintf("image-%d-%d%s", stamp, attempt, ext)
		}
		path = filepath.Join(s.dir, name)

		var err error
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) || attempt >= maxNameAttempts {
			return "", fmt.Errorf("failed to create upload file: %w", err)
		}
	}

	// Read one byte past the cap to detect oversize content.
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return "", ErrTooLarge
	}

	s.mu.Lock()
	s.names[name] = struct{}{}
	s.mu.Unlock()

	return name, nil
}

// List returns the indexed file names, sorted.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path resolves a file name to its on-disk path, rejecting names that would
// escape the uploads directory.
func (s *Store) Path(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// Exists reports whether the named file is present.
func (s *Store) Exists(name string) bool {
	_, err := s.Path(name)
	return err == nil
}

// Remove deletes the named file from disk and the index.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	s.mu.Lock()
	delete(s.names, name)
	s.mu.Unlock()
	return nil
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." {
		return ErrBadName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrBadName
	}
	return nil
}
