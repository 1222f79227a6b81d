package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/keshon/promptvc/internal/logging"
	"github.com/keshon/promptvc/internal/version"
)

// Identify resolves which known version the working file's current
// bytes correspond to. Returns ok=false when the file is absent or its
// content matches no snapshot. Never mutates the history.
func (c *Context) Identify(rel string) (version.Triple, bool, error) {
	path := c.WorkingPath(rel)
	if !c.FS.Exists(path) {
		return version.Zero, false, nil
	}
	data, err := c.FS.ReadFile(path)
	if err != nil {
		return version.Zero, false, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return c.IdentifyBytes(rel, data)
}

// IdentifyBytes is Identify for content already in memory, so callers
// hashing the same bytes read the file only once.
func (c *Context) IdentifyBytes(rel string, data []byte) (version.Triple, bool, error) {
	h, err := c.LoadHistory(rel)
	if err != nil {
		return version.Zero, false, err
	}

	sum := c.Hash(data)
	// Newest first: recent matches are likelier.
	for _, e := range h {
		stored, err := c.FS.ReadFile(c.ArtifactPath(rel, e))
		if err != nil {
			if c.FS.IsNotExist(err) {
				logging.L().Debug("snapshot missing during identity scan",
					zap.String("file", rel),
					zap.String("artifact", e.Filename))
				continue
			}
			return version.Zero, false, fmt.Errorf("failed to read snapshot %q: %w", e.Filename, err)
		}
		if c.Hash(stored) == sum {
			return e.Version, true, nil
		}
	}
	return version.Zero, false, nil
}
