package project

import (
	"path/filepath"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/fs"
)

// FindRoot determines the project root by walking up.
// It traverses from start (inclusive) through its ancestors and returns
// the first directory containing a root marker. When no marker exists
// anywhere it falls back to start's parent if start is a file or a
// not-yet-existing path with an extension, else to start itself.
// Deterministic and side effect free, so store paths stay stable
// across invocations.
func FindRoot(fsys fs.FS, start string) string {
	current := filepath.Clean(start)
	if abs, err := filepath.Abs(current); err == nil {
		current = abs
	}

	dir := current
	for {
		for _, marker := range config.RootMarkers {
			if fsys.Exists(filepath.Join(dir, marker)) {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	if isFileLike(fsys, current) {
		return filepath.Dir(current)
	}
	return current
}

// isFileLike reports whether p names an existing file or a
// not-yet-created path that looks like a file.
func isFileLike(fsys fs.FS, p string) bool {
	if fsys.Exists(p) {
		return !fsys.IsDir(p)
	}
	return filepath.Ext(p) != ""
}
