package listprops

import (
	"errors"
	"fmt"
	"time"

	"github.com/simonhull/listprops/internal/isom"
	"github.com/simonhull/listprops/internal/propstore"
)

// Names of the rows synthesized from container metadata.
const (
	IsomBrandName            = "Isom.Brand"
	IsomCreationTimeName     = "Isom.CreationTime"
	IsomModificationTimeName = "Isom.ModificationTime"
)

// PropertyStore is an opened, ordered property collection.
type PropertyStore interface {
	Count() int
	KeyAt(i int) (Key, error)
	Value(key Key) (Value, error)
	Close() error
}

// StoreProvider opens the property collection of a file.
type StoreProvider interface {
	Open(path string) (PropertyStore, error)
}

// StoreProviderFunc adapts a function to StoreProvider.
type StoreProviderFunc func(path string) (PropertyStore, error)

// Open calls f(path).
func (f StoreProviderFunc) Open(path string) (PropertyStore, error) {
	return f(path)
}

// Resolver describes property keys. Describe reports false when the key
// has no descriptor, which is not an error.
type Resolver interface {
	Describe(key Key) (Descriptor, bool)
	Close() error
}

// Container is an opened media container.
type Container interface {
	MajorBrand() string
	CreationTime() *time.Time
	ModificationTime() *time.Time
	Close() error
}

// ContainerReader opens container metadata. TryOpen returns (nil, nil)
// when the file is not a container it understands.
type ContainerReader interface {
	TryOpen(path string) (Container, error)
}

// ContainerReaderFunc adapts a function to ContainerReader.
type ContainerReaderFunc func(path string) (Container, error)

// TryOpen calls f(path).
func (f ContainerReaderFunc) TryOpen(path string) (Container, error) {
	return f(path)
}

// Collector produces the unsorted rows of a file.
type Collector struct {
	stores     StoreProvider
	resolver   Resolver
	containers ContainerReader
}

// NewCollector returns a Collector. containers may be nil.
func NewCollector(stores StoreProvider, resolver Resolver, containers ContainerReader) *Collector {
	return &Collector{stores: stores, resolver: resolver, containers: containers}
}

// Collect returns one row per store property of path, followed by the
// container rows when the file is a media container. Every handle it
// opens is closed before it returns.
func (c *Collector) Collect(path string) ([]Row, error) {
	rows, err := c.storeRows(path)
	if err != nil {
		return nil, err
	}

	if c.containers == nil {
		return rows, nil
	}

	extra, err := c.containerRows(path)
	if err != nil {
		return nil, err
	}
	return append(rows, extra...), nil
}

func (c *Collector) storeRows(path string) (rows []Row, err error) {
	store, err := c.stores.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = &OpenError{Path: path, Op: "close", Err: cerr}
		}
	}()

	n := store.Count()
	rows = make([]Row, 0, n)
	for i := 0; i < n; i++ {
		key, err := store.KeyAt(i)
		if err != nil {
			return nil, &OpenError{Path: path, Op: "read", Err: err}
		}
		value, err := store.Value(key)
		if err != nil {
			return nil, &OpenError{Path: path, Op: "read", Err: fmt.Errorf("property %s: %w", key, err)}
		}

		desc, found := c.resolver.Describe(key)
		rows = append(rows, NewRow(key, desc, found, value))
	}

	return rows, nil
}

func (c *Collector) containerRows(path string) ([]Row, error) {
	container, err := c.containers.TryOpen(path)
	if err != nil {
		var openErr *OpenError
		if errors.As(err, &openErr) {
			return nil, err
		}
		return nil, &OpenError{Path: path, Op: "read container", Err: err}
	}
	if container == nil {
		return nil, nil
	}
	defer container.Close()

	rows := []Row{NewSyntheticRow(IsomBrandName, container.MajorBrand())}
	if t := container.CreationTime(); t != nil {
		rows = append(rows, NewSyntheticRow(IsomCreationTimeName, FormatTime(*t)))
	}
	if t := container.ModificationTime(); t != nil {
		rows = append(rows, NewSyntheticRow(IsomModificationTimeName, FormatTime(*t)))
	}
	return rows, nil
}

// storeProvider adapts the platform property store.
func storeProvider(p *propstore.Provider) StoreProvider {
	return StoreProviderFunc(func(path string) (PropertyStore, error) {
		store, err := p.Open(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	})
}

// isomContainer adapts an ISO base media file to Container.
type isomContainer struct {
	f *isom.File
}

func (c isomContainer) MajorBrand() string { return c.f.MajorBrand }
func (c isomContainer) CreationTime() *time.Time { return c.f.CreationTime }
func (c isomContainer) ModificationTime() *time.Time { return c.f.ModificationTime }
func (c isomContainer) Close() error { return c.f.Close() }

// isomReader opens containers with the ISO base media parser.
var isomReader = ContainerReaderFunc(func(path string) (Container, error) {
	f, err := isom.TryOpen(path)
	if err != nil || f == nil {
		return nil, err
	}
	return isomContainer{f: f}, nil
})
