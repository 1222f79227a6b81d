package store

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/logging"
	"github.com/keshon/promptvc/internal/util"
	"github.com/keshon/promptvc/internal/version"
)

// TimeFormat is the layout of Entry.Timestamp.
const TimeFormat = "2006-01-02 15:04:05"

// Entry is one immutable history record for a tracked file.
type Entry struct {
	Version   version.Triple `json:"version"`
	Timestamp string         `json:"timestamp"`
	Message   string         `json:"message"`
	Filename  string         `json:"filename"`
}

// History holds a tracked file's version entries, newest first.
type History []Entry

// Latest returns the newest version, or version.Zero for an empty
// history.
func (h History) Latest() version.Triple {
	if len(h) == 0 {
		return version.Zero
	}
	return h[0].Version
}

// Find returns the entry recording the given version.
func (h History) Find(v version.Triple) (Entry, bool) {
	for _, e := range h {
		if e.Version == v {
			return e, true
		}
	}
	return Entry{}, false
}

// ArtifactName builds the deterministic snapshot file name for a
// version of the original file.
func ArtifactName(v version.Triple, original string) string {
	return fmt.Sprintf("v%s_%s", v, original)
}

// LoadHistory reads a tracked file's history. A missing metadata file
// yields an empty history, never an error.
func (c *Context) LoadHistory(rel string) (History, error) {
	metaPath := filepath.Join(c.PathFor(rel), config.MetaFile)
	var h History
	if err := util.ReadJSON(c.FS, metaPath, &h); err != nil {
		if c.FS.IsNotExist(err) {
			return History{}, nil
		}
		return nil, fmt.Errorf("failed to read history %q: %w", metaPath, err)
	}
	return h, nil
}

// saveHistory persists the full history atomically.
func (c *Context) saveHistory(rel string, h History) error {
	metaPath := filepath.Join(c.PathFor(rel), config.MetaFile)
	if err := util.WriteJSON(c.FS, metaPath, h); err != nil {
		return fmt.Errorf("failed to write history %q: %w", metaPath, err)
	}
	return nil
}

// ArtifactPath returns the absolute path of an entry's snapshot file.
func (c *Context) ArtifactPath(rel string, e Entry) string {
	return filepath.Join(c.PathFor(rel), e.Filename)
}

// ReadArtifact loads an entry's snapshot bytes.
func (c *Context) ReadArtifact(rel string, e Entry) ([]byte, error) {
	p := c.ArtifactPath(rel, e)
	data, err := c.FS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", p, err)
	}
	return data, nil
}

// AppendSnapshot stores data as the snapshot of rel at version v and
// prepends the matching entry to its history. The artifact is written
// before the history: a crash in between leaves an orphaned artifact,
// never a dangling entry.
func (c *Context) AppendSnapshot(rel string, data []byte, v version.Triple, message string) (Entry, error) {
	dir := c.PathFor(rel)
	if err := c.FS.MkdirAll(dir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("failed to create store dir %q: %w", dir, err)
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Version:   v,
		Timestamp: time.Now().Format(TimeFormat),
		Message:   message,
		Filename:  ArtifactName(v, filepath.Base(filepath.FromSlash(rel))),
	}

	artifact := filepath.Join(dir, entry.Filename)
	if err := c.FS.WriteFile(artifact, data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("failed to write snapshot %q: %w", artifact, err)
	}

	if err := c.saveHistory(rel, append(History{entry}, h...)); err != nil {
		return Entry{}, err
	}

	logging.L().Debug("snapshot appended",
		zap.String("file", rel),
		zap.String("version", v.String()))

	return entry, nil
}
