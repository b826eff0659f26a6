// Package propstore is the platform property store: it opens a file and
// yields its properties as an ordered collection of (key, value) pairs
// gathered from the registered property sources.
package propstore

import (
	"fmt"
	"os"

	"github.com/simonhull/listprops/internal/types"
)

// Store is the property collection of one opened file.
// It holds the file open until Close.
type Store struct {
	path   string
	f      *os.File
	keys   []types.Key
	values map[types.Key]types.Value
	closed bool
}

func newStore(path string, f *os.File) *Store {
	return &Store{
		path:   path,
		f:      f,
		values: make(map[types.Key]types.Value),
	}
}

// add records a property. The first value emitted for a key wins.
func (s *Store) add(key types.Key, value types.Value) {
	if _, ok := s.values[key]; ok {
		return
	}
	s.keys = append(s.keys, key)
	s.values[key] = value
}

// Path returns the absolute path of the file.
func (s *Store) Path() string {
	return s.path
}

// Count returns the number of properties, or 0 after Close.
func (s *Store) Count() int {
	if s.closed {
		return 0
	}
	return len(s.keys)
}

// KeyAt returns the key at index i in collection order.
func (s *Store) KeyAt(i int) (types.Key, error) {
	if s.closed {
		return types.Key{}, types.ErrClosed
	}
	if i < 0 || i >= len(s.keys) {
		return types.Key{}, fmt.Errorf("property index %d out of range [0, %d)", i, len(s.keys))
	}
	return s.keys[i], nil
}

// Value returns the value stored for key, or Null when the key is absent.
func (s *Store) Value(key types.Key) (types.Value, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	if v, ok := s.values[key]; ok && v != nil {
		return v, nil
	}
	return types.Null{}, nil
}

// Close releases the file handle. Subsequent calls are no-ops.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.keys = nil
	s.values = nil
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
