package listprops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/listprops/internal/logger"
	"github.com/simonhull/listprops/internal/propstore"
	"github.com/simonhull/listprops/internal/schema"
)

// FileResult is the outcome of listing one file: its sorted rows, or the
// error that stopped it.
type FileResult struct {
	Path string
	Rows []Row
	Err  error
}

// PathResult is the outcome of one path pattern. Err is set when the
// pattern resolved to no files, in which case Files is empty.
type PathResult struct {
	Pattern string
	Files   []FileResult
	Err     error
}

// Lister lists the properties of files one at a time.
//
// The descriptor resolver is acquired by New and released by Close:
//
//	l, err := listprops.New()
//	if err != nil {
//		return err
//	}
//	defer l.Close()
//
//	results := l.Run(ctx, []string{"*.m4a"})
type Lister struct {
	collector *Collector
	resolver  Resolver
	closed    bool
}

// New returns a Lister. Unless WithResolver is given it opens the built-in
// descriptor catalog and any overlays named by WithSchemaOverlay.
func New(opts ...Option) (*Lister, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	resolver := o.resolver
	if resolver == nil {
		r, err := schema.Open(o.schemaOverlays...)
		if err != nil {
			return nil, fmt.Errorf("failed to open property descriptions: %w", err)
		}
		resolver = r
	}

	stores := o.stores
	if stores == nil {
		stores = storeProvider(propstore.New(propstore.WithLogger(o.log)))
	}

	containers := o.containers
	if o.noContainers {
		containers = nil
	}

	return &Lister{
		collector: NewCollector(stores, resolver, containers),
		resolver:  resolver,
	}, nil
}

// Run expands each pattern in order and lists every matched file. Errors
// are recorded in the results and never stop the run.
func (l *Lister) Run(ctx context.Context, patterns []string) []PathResult {
	log := logger.FromContext(ctx)

	results := make([]PathResult, 0, len(patterns))
	for _, pattern := range patterns {
		files, err := ExpandPattern(pattern)
		if err != nil {
			log.V(1).Info("pattern not resolved", "pattern", pattern, "error", err.Error())
			results = append(results, PathResult{Pattern: pattern, Err: err})
			continue
		}

		pr := PathResult{Pattern: pattern, Files: make([]FileResult, 0, len(files))}
		for _, path := range files {
			fr := l.ListFile(path)
			if fr.Err != nil {
				log.V(1).Info("file not listed", "path", path, "error", fr.Err.Error())
			} else {
				log.V(2).Info("file listed", "path", path, "rows", len(fr.Rows))
			}
			pr.Files = append(pr.Files, fr)
		}
		results = append(results, pr)
	}
	return results
}

// ListFile collects and sorts the rows of a single file.
func (l *Lister) ListFile(path string) FileResult {
	if l.closed {
		return FileResult{Path: path, Err: ErrClosed}
	}

	rows, err := l.collector.Collect(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	SortRows(rows)
	return FileResult{Path: path, Rows: rows}
}

// Close releases the descriptor resolver. Only the first call has effect.
func (l *Lister) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return l.resolver.Close()
}

// WriteResults writes results in order. Each listed file is its path, its
// rendered rows and a blank line. A file that failed is its path, the
// error and a blank line; an unresolved pattern is the error alone. With
// detail set, errors show their type and the chain of wrapped causes.
func WriteResults(w io.Writer, results []PathResult, cfg RenderConfig, detail bool) error {
	for _, pr := range results {
		if pr.Err != nil {
			if _, err := fmt.Fprintln(w, errorText(pr.Err, detail)); err != nil {
				return err
			}
			continue
		}

		for _, fr := range pr.Files {
			if _, err := fmt.Fprintln(w, fr.Path); err != nil {
				return err
			}
			if fr.Err != nil {
				if _, err := fmt.Fprintln(w, errorText(fr.Err, detail)); err != nil {
					return err
				}
			} else if err := Render(w, fr.Rows, cfg); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func errorText(err error, detail bool) string {
	if !detail {
		return err.Error()
	}
	return errorDetail(err)
}

// errorDetail renders err and each error it wraps, one per line.
func errorDetail(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; depth++ {
		if depth > 0 {
			b.WriteString("\n" + Indent + "caused by: ")
		}
		fmt.Fprintf(&b, "%T: %v", err, err)
		err = errors.Unwrap(err)
	}
	return b.String()
}
