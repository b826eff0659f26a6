package listprops

import "github.com/go-logr/logr"

// Option configures a Lister.
//
// Example:
//
//	l, err := listprops.New(
//	    listprops.WithSchemaOverlay("extra.yaml"),
//	    listprops.WithLogger(log),
//	)
type Option func(*listerOptions)

type listerOptions struct {
	stores         StoreProvider
	resolver       Resolver
	containers     ContainerReader
	noContainers   bool
	schemaOverlays []string
	log            logr.Logger
}

func defaultOptions() *listerOptions {
	return &listerOptions{
		containers: isomReader,
		log:        logr.Discard(),
	}
}

// WithStoreProvider replaces the property store provider.
func WithStoreProvider(p StoreProvider) Option {
	return func(o *listerOptions) {
		o.stores = p
	}
}

// WithResolver replaces the descriptor resolver. The Lister takes
// ownership and closes it from Close.
func WithResolver(r Resolver) Option {
	return func(o *listerOptions) {
		o.resolver = r
	}
}

// WithContainerReader replaces the container metadata reader.
func WithContainerReader(r ContainerReader) Option {
	return func(o *listerOptions) {
		o.containers = r
		o.noContainers = r == nil
	}
}

// WithoutContainers disables the container metadata rows.
func WithoutContainers() Option {
	return func(o *listerOptions) {
		o.noContainers = true
	}
}

// WithSchemaOverlay adds property description files loaded after the
// built-in catalog. It has no effect together with WithResolver.
func WithSchemaOverlay(paths ...string) Option {
	return func(o *listerOptions) {
		o.schemaOverlays = append(o.schemaOverlays, paths...)
	}
}

// WithLogger sets the logger the default store provider reports source
// failures to.
func WithLogger(log logr.Logger) Option {
	return func(o *listerOptions) {
		o.log = log
	}
}
