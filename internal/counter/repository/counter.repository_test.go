package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBackend is an in-memory Backend.
type memBackend struct {
	data    []byte
	missing bool
	loadErr error
	saveErr error
	saves   int
}

func (m *memBackend) Load() ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.missing {
		return nil, fs.ErrNotExist
	}
	return m.data, nil
}

func (m *memBackend) Save(data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.missing = false
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memBackend) Prepare() error { return nil }

func TestReadCountMissingIsZero(t *testing.T) {
	repo := NewCounterRepository(&memBackend{missing: true})

	count, err := repo.ReadCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReadCountTrimsWhitespace(t *testing.T) {
	repo := NewCounterRepository(&memBackend{data: []byte("42\n")})

	count, err := repo.ReadCount()
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestReadCountMalformed(t *testing.T) {
	for _, content := range []string{"", "abc", "4 2", "-3", "1.5"} {
		repo := NewCounterRepository(&memBackend{data: []byte(content)})

		_, err := repo.ReadCount()
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "content %q: got %v", content, err)
		assert.Equal(t, content, parseErr.Content)
	}
}

func TestReadCountLoadFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := NewCounterRepository(&memBackend{loadErr: boom})

	_, err := repo.ReadCount()
	assert.ErrorIs(t, err, boom)
}

func TestIncrementCountWritesDecimalText(t *testing.T) {
	backend := &memBackend{data: []byte("9")}
	repo := NewCounterRepository(backend)

	count, err := repo.IncrementCount()
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	assert.Equal(t, "10", string(backend.data))
}

func TestIncrementCountDoesNotSaveOnParseError(t *testing.T) {
	backend := &memBackend{data: []byte("garbage")}
	repo := NewCounterRepository(backend)

	_, err := repo.IncrementCount()
	require.Error(t, err)
	assert.Zero(t, backend.saves)
}

func TestIncrementCountSaveFailure(t *testing.T) {
	boom := errors.New("read-only")
	repo := NewCounterRepository(&memBackend{missing: true, saveErr: boom})

	_, err := repo.IncrementCount()
	assert.ErrorIs(t, err, boom)
}

func TestFileBackendSuccessiveVisits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "count.txt")
	repo := NewCounterRepository(FileBackend{Path: path})
	require.NoError(t, repo.EnsureReady())

	for want := 1; want <= 5; want++ {
		got, err := repo.IncrementCount()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5", string(raw))
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.txt")
	require.NoError(t, os.WriteFile(path, []byte("1234"), 0o644))

	count, err := NewCounterRepository(FileBackend{Path: path}).ReadCount()
	require.NoError(t, err)
	assert.Equal(t, 1234, count)
}

func TestFileBackendTruncatesLongerContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.txt")
	require.NoError(t, os.WriteFile(path, []byte("99   \n"), 0o644))
	repo := NewCounterRepository(FileBackend{Path: path})

	_, err := repo.IncrementCount()
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "100", string(raw))
}

func TestEnsureReadyIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	repo := NewCounterRepository(FileBackend{Path: filepath.Join(dir, "count.txt")})

	require.NoError(t, repo.EnsureReady())
	require.NoError(t, repo.EnsureReady())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
