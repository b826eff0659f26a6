package listprops

import (
	"github.com/simonhull/listprops/internal/types"
)

// OpenError is an alias to types.OpenError for the public API.
type OpenError = types.OpenError

// PathResolutionError is an alias to types.PathResolutionError for the public API.
type PathResolutionError = types.PathResolutionError

// CorruptedFileError is an alias to types.CorruptedFileError for the public API.
type CorruptedFileError = types.CorruptedFileError

// ErrClosed is returned by property stores and listers used after Close.
var ErrClosed = types.ErrClosed
