//go:build linux

package propstore

import (
	"bytes"
	"errors"
	"sort"

	"golang.org/x/sys/unix"

	"github.com/simonhull/listprops/internal/registry"
	"github.com/simonhull/listprops/internal/types"
)

// xattrSource yields the extended attributes of the file.
type xattrSource struct{}

func (xattrSource) Name() string { return "xattr" }

func (xattrSource) Collect(t *registry.Target, emit registry.Emit) error {
	names, err := listXattr(t.Path)
	if err != nil {
		if errors.Is(err, unix.ENOTSUP) {
			return nil
		}
		return Warnings{{Stage: "xattr", Message: err.Error()}}
	}

	var warnings Warnings
	for _, name := range names {
		raw, err := getXattr(t.Path, name)
		if err != nil {
			warnings = append(warnings, types.Warning{Stage: "xattr", Message: name + ": " + err.Error()})
			continue
		}
		emit(xattrProperty(name, raw))
	}

	if len(warnings) > 0 {
		return warnings
	}
	return nil
}

// listXattr returns the attribute names of path, sorted.
func listXattr(path string) ([]string, error) {
	buf, err := readSized(func(dest []byte) (int, error) {
		return unix.Listxattr(path, dest)
	})
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range bytes.Split(buf, []byte{0}) {
		if len(name) > 0 {
			names = append(names, string(name))
		}
	}
	sort.Strings(names)
	return names, nil
}

func getXattr(path, name string) ([]byte, error) {
	return readSized(func(dest []byte) (int, error) {
		return unix.Getxattr(path, name, dest)
	})
}

// readSized calls fn once to learn the size and again to fill the buffer,
// retrying when the attribute grows in between.
func readSized(fn func(dest []byte) (int, error)) ([]byte, error) {
	for {
		size, err := fn(nil)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)
		n, err := fn(buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return buf[:n], nil
	}
}
