package store

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/keshon/promptvc/internal/logging"
)

// Restore copies an entry's snapshot over the working file, creating
// any missing parent directories. The tracked file's bytes afterwards
// are exactly the artifact's bytes.
func (c *Context) Restore(rel string, e Entry) error {
	data, err := c.ReadArtifact(rel, e)
	if err != nil {
		return err
	}

	dst := c.WorkingPath(rel)
	if err := c.FS.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create parent dirs for %q: %w", dst, err)
	}
	if err := c.FS.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to restore %q: %w", dst, err)
	}

	logging.L().Debug("file restored",
		zap.String("file", rel),
		zap.String("version", e.Version.String()))
	return nil
}
