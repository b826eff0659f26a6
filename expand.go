package listprops

import (
	"os"
	"path/filepath"
)

// ExpandPattern returns the regular files matching pattern. The directory
// part is taken literally and only the final element may hold wildcards, so
// matching never descends into subdirectories. Files are returned in
// directory listing order. An empty directory part is the current working
// directory.
func ExpandPattern(pattern string) ([]string, error) {
	dir, base := filepath.Split(pattern)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &PathResolutionError{Pattern: pattern, Reason: "cannot determine working directory", Err: err}
		}
		dir = wd
	}
	if base == "" {
		return nil, &PathResolutionError{Pattern: pattern, Reason: "no file name"}
	}
	if _, err := filepath.Match(base, ""); err != nil {
		return nil, &PathResolutionError{Pattern: pattern, Reason: "invalid pattern", Err: err}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PathResolutionError{Pattern: pattern, Reason: "cannot read directory", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(base, entry.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegular(entry, path) {
			continue
		}
		files = append(files, path)
	}

	if len(files) == 0 {
		return nil, &PathResolutionError{Pattern: pattern, Reason: "no matching files"}
	}
	return files, nil
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
