//go:build !linux

package propstore

import (
	"github.com/simonhull/listprops/internal/registry"
)

// xattrSource is empty on platforms without Linux extended attributes.
type xattrSource struct{}

func (xattrSource) Name() string { return "xattr" }

func (xattrSource) Collect(*registry.Target, registry.Emit) error {
	return nil
}
