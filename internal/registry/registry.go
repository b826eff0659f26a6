// Package registry keeps the ordered set of property sources that make up
// the property store.
package registry

import (
	"io"
	"io/fs"

	"github.com/simonhull/listprops/internal/types"
)

// Target is the opened file a source reads from.
type Target struct {
	// Absolute path of the file
	Path string

	// Result of stat on Path
	Info fs.FileInfo

	// Random access to the file content
	Reader io.ReaderAt
}

// Emit receives one property from a source.
type Emit func(key types.Key, value types.Value)

// Source contributes properties for a file.
type Source interface {
	// Name identifies the source in logs and warnings.
	Name() string

	// Collect emits the source's properties for t. Returned errors are
	// treated as warnings by the store; they never fail the file.
	Collect(t *Target, emit Emit) error
}

// sources holds the registered sources. It is populated from init functions.
var sources []Source

// Register appends a source. Sources are consulted in registration order.
// Registering a name twice replaces the earlier source in place.
func Register(src Source) {
	for i, s := range sources {
		if s.Name() == src.Name() {
			sources[i] = src
			return
		}
	}
	sources = append(sources, src)
}

// Sources returns the registered sources in registration order.
func Sources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// Get returns the source registered under name, or nil.
func Get(name string) Source {
	for _, s := range sources {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
