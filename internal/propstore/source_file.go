package propstore

import (
	"path/filepath"

	"github.com/simonhull/listprops/internal/registry"
	"github.com/simonhull/listprops/internal/types"
)

// fileSource yields the file system properties every file has.
type fileSource struct{}

func (fileSource) Name() string { return "file" }

func (fileSource) Collect(t *registry.Target, emit registry.Emit) error {
	name := filepath.Base(t.Path)

	emit(types.KeyItemNameDisplay, types.Text(name))
	emit(types.KeyFileName, types.Text(name))
	if ext := filepath.Ext(name); ext != "" {
		emit(types.KeyFileExtension, types.Text(ext))
	}
	emit(types.KeySize, types.UInt64(t.Info.Size()))
	emit(types.KeyDateModified, types.UTCTime(t.Info.ModTime()))
	emit(types.KeyFileAttributes, types.Text(t.Info.Mode().String()))
	emit(types.KeyItemFolderPathDisplay, types.Text(filepath.Dir(t.Path)))
	emit(types.KeyItemPathDisplay, types.Text(t.Path))

	return nil
}
