package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// Store owns the data directory holding one JSON file per collection.
type Store struct {
	dir string
}

// Open ensures the data directory exists and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile open %s: %w: %w", dir, domain.ErrStorageUnavailable, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }

// Collection is a named, file-backed ordered sequence of records. Reads take
// the read lock; every mutation holds the write lock across the whole
// load-mutate-save sequence, so mutations are linearizable per collection.
type Collection[T any] struct {
	name string
	path string
	mu   sync.RWMutex
}

// NewCollection binds a typed collection to <dir>/<name>.json. The file is
// created lazily on first save; until then the collection reads as empty.
func NewCollection[T any](s *Store, name string) *Collection[T] {
	return &Collection[T]{
		name: name,
		path: filepath.Join(s.dir, name+".json"),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load returns the full ordered sequence of records. A missing file is an
// empty collection; any other failure is ErrStorageUnavailable.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read()
}

// Update runs fn on the current sequence and persists its result, all under
// the collection's write lock. fn receives the loaded records and returns
// the full sequence to store; returning an error aborts without writing.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return nil, err
	}
	next, err := fn(records)
	if err != nil {
		return nil, err
	}
	if err := c.write(next); err != nil {
		return nil, err
	}
	return next, nil
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}
	return records, nil
}

// write replaces the collection file atomically: the new contents go to a
// temp file in the same directory, then rename over the target. A crash
// mid-write leaves the previous file intact, never a truncated one.
func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, c.name+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w: %w", c.name, domain.ErrStorageUnavailable, err)
	}
	return nil
}
