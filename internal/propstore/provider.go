package propstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/simonhull/listprops/internal/registry"
	"github.com/simonhull/listprops/internal/types"
)

func init() {
	registry.Register(fileSource{})
	registry.Register(xattrSource{})
	registry.Register(mimeSource{})
	registry.Register(mediaSource{})
}

// errIsDirectory is wrapped in the OpenError returned for directories.
var errIsDirectory = errors.New("is a directory")

// Provider opens property stores.
type Provider struct {
	sources []registry.Source
	log     logr.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithSources replaces the registered sources with srcs.
func WithSources(srcs ...registry.Source) Option {
	return func(p *Provider) {
		p.sources = srcs
	}
}

// WithLogger sets the logger used to report source warnings.
func WithLogger(log logr.Logger) Option {
	return func(p *Provider) {
		p.log = log
	}
}

// New returns a Provider over the registered sources.
func New(opts ...Option) *Provider {
	p := &Provider{
		sources: registry.Sources(),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open opens path and gathers its properties.
//
// Open fails with a *types.OpenError when the file cannot be stat'ed or
// opened, or is a directory. A source that fails is logged and skipped.
// The caller must Close the returned store.
func (p *Provider) Open(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &types.OpenError{Path: path, Op: "resolve", Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &types.OpenError{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return nil, &types.OpenError{Path: path, Op: "open", Err: errIsDirectory}
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, &types.OpenError{Path: path, Op: "open", Err: err}
	}

	store := newStore(abs, f)
	target := &registry.Target{Path: abs, Info: info, Reader: f}

	for _, src := range p.sources {
		if err := src.Collect(target, store.add); err != nil {
			p.log.Info("property source failed", "source", src.Name(), "path", abs, "warning", err.Error())
		}
	}

	p.log.V(1).Info("opened property store", "path", abs, "count", store.Count())
	return store, nil
}

// Warnings adapts non-fatal issues to an error.
type Warnings []types.Warning

func (w Warnings) Error() string {
	parts := make([]string, len(w))
	for i, warning := range w {
		parts[i] = warning.String()
	}
	return strings.Join(parts, "; ")
}
