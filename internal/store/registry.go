package store

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/version"
)

// TrackedFile is one registry row: a snapshot store and the state of
// its working-tree counterpart.
type TrackedFile struct {
	Path         string // project-relative, slash separated
	Latest       version.Triple
	LastModified string
	Exists       bool
}

// Problem records a per-file failure during a multi-file scan. Scans
// collect problems and keep going; one broken store never aborts the
// batch.
type Problem struct {
	Path string
	Err  error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %v", p.Path, p.Err)
}

// ListTracked enumerates every snapshot store under the hidden root,
// sorted by path. A missing hidden root yields an empty registry.
func (c *Context) ListTracked() ([]TrackedFile, []Problem, error) {
	hidden := c.HiddenRoot()
	if !c.FS.IsDir(hidden) {
		return nil, nil, nil
	}

	var (
		files    []TrackedFile
		problems []Problem
	)
	if err := c.walkStores(hidden, &files, &problems); err != nil {
		return nil, nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, problems, nil
}

// walkStores descends the hidden root. A directory holding a metadata
// file is a snapshot store and is not descended further; anything else
// mirrors a working-tree directory.
func (c *Context) walkStores(dir string, out *[]TrackedFile, problems *[]Problem) error {
	entries, err := c.FS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", dir, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if !c.FS.Exists(filepath.Join(sub, config.MetaFile)) {
			if err := c.walkStores(sub, out, problems); err != nil {
				return err
			}
			continue
		}

		rel, err := filepath.Rel(c.HiddenRoot(), sub)
		if err != nil {
			*problems = append(*problems, Problem{Path: sub, Err: err})
			continue
		}
		rel = filepath.ToSlash(rel)

		h, err := c.LoadHistory(rel)
		if err != nil {
			*problems = append(*problems, Problem{Path: rel, Err: err})
			continue
		}

		tf := TrackedFile{
			Path:   rel,
			Latest: h.Latest(),
			Exists: c.FS.Exists(c.WorkingPath(rel)),
		}
		if len(h) > 0 {
			tf.LastModified = h[0].Timestamp
		}
		*out = append(*out, tf)
	}
	return nil
}
