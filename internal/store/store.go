package store

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/digest"
	"github.com/keshon/promptvc/internal/fs"
)

// Context wraps snapshot-store operations for one project: the project
// root, the filesystem and the configured content hasher. Every
// operation takes the root from here; there is no process-wide state.
type Context struct {
	Root string
	FS   fs.FS
	Hash digest.Hasher
}

// NewContext builds a store context rooted at the given project root.
func NewContext(root string, fsys fs.FS, h digest.Hasher) *Context {
	return &Context{Root: root, FS: fsys, Hash: h}
}

// HiddenRoot returns the project's hidden store directory.
func (c *Context) HiddenRoot() string {
	return filepath.Join(c.Root, config.HiddenDir)
}

// PathFor returns the snapshot directory of a tracked file: the hidden
// root joined with the file's relative path. Pure path construction.
func (c *Context) PathFor(rel string) string {
	return filepath.Join(c.HiddenRoot(), filepath.FromSlash(rel))
}

// WorkingPath returns the absolute working-tree path of a tracked file.
func (c *Context) WorkingPath(rel string) string {
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}

// Rel converts a path to the slash-separated project-relative form used
// as the tracked-file key in histories and manifests.
func (c *Context) Rel(path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		var err error
		if abs, err = filepath.Abs(path); err != nil {
			return "", fmt.Errorf("failed to resolve %q: %w", path, err)
		}
	}
	rel, err := filepath.Rel(c.Root, abs)
	if err != nil {
		return "", fmt.Errorf("%q is outside the project root %q: %w", path, c.Root, err)
	}
	return filepath.ToSlash(rel), nil
}

// IsTracked reports whether rel has a snapshot history.
func (c *Context) IsTracked(rel string) bool {
	return c.FS.Exists(filepath.Join(c.PathFor(rel), config.MetaFile))
}

// EnsureHidden idempotently creates the hidden store root and writes
// an ignore-all marker inside it. Repeated calls leave an existing
// marker untouched.
func (c *Context) EnsureHidden() error {
	hidden := c.HiddenRoot()
	if err := c.FS.MkdirAll(hidden, 0o755); err != nil {
		return fmt.Errorf("failed to create store root %q: %w", hidden, err)
	}

	marker := filepath.Join(hidden, config.IgnoreMarker)
	if c.FS.Exists(marker) {
		return nil
	}
	content := []byte("# Ignore everything in this directory\n*\n")
	if err := c.FS.WriteFile(marker, content, 0o644); err != nil {
		return fmt.Errorf("failed to write ignore marker %q: %w", marker, err)
	}
	return nil
}
