package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"demoapps/pkg/logger"
)

// Backend is the durable storage holding the counter's decimal text.
// Load must return an error matching fs.ErrNotExist when nothing was saved yet.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Prepare() error
}

// FileBackend keeps the counter in a single file.
type FileBackend struct {
	Path string
}

func (b FileBackend) Load() ([]byte, error) {
	return os.ReadFile(b.Path)
}

// Save truncates the file and writes data.
func (b FileBackend) Save(data []byte) error {
	return os.WriteFile(b.Path, data, 0o644)
}

// Prepare creates the containing directory if it is absent.
func (b FileBackend) Prepare() error {
	return os.MkdirAll(filepath.Dir(b.Path), 0o755)
}

var errNegative = errors.New("count is negative")

// ParseError reports counter content that is not a non-negative base-10 integer.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid counter content %q: %v", e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CounterRepository reads and rewrites the counter. It does no locking:
// two concurrent IncrementCount calls can read the same value and lose an
// increment.
type CounterRepository struct {
	Backend Backend
}

func NewCounterRepository(backend Backend) *CounterRepository {
	return &CounterRepository{Backend: backend}
}

// EnsureReady prepares the backend once before serving.
func (r *CounterRepository) EnsureReady() error {
	if err := r.Backend.Prepare(); err != nil {
		logger.Sugar.Errorf("Failed to prepare counter storage: %v", err)
		return err
	}
	return nil
}

// ReadCount returns 0 when nothing has been stored yet.
func (r *CounterRepository) ReadCount() (int, error) {
	data, err := r.Backend.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to load counter: %v", err)
		return 0, err
	}

	content := strings.TrimSpace(string(data))
	count, err := strconv.Atoi(content)
	if err != nil {
		return 0, &ParseError{Content: content, Err: err}
	}
	if count < 0 {
		return 0, &ParseError{Content: content, Err: errNegative}
	}
	return count, nil
}

// IncrementCount stores ReadCount()+1 and returns it.
func (r *CounterRepository) IncrementCount() (int, error) {
	count, err := r.ReadCount()
	if err != nil {
		return 0, err
	}
	count++
	if err := r.Backend.Save([]byte(strconv.Itoa(count))); err != nil {
		logger.Sugar.Errorf("Failed to save counter value %d: %v", count, err)
		return 0, err
	}
	return count, nil
}
