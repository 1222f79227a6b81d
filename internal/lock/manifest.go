package lock

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/logging"
	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/util"
	"github.com/keshon/promptvc/internal/version"
)

// FormatVersion identifies the manifest schema.
const FormatVersion = 1

// Manifest errors. Sync treats both as fatal; status degrades to
// "no lock data" instead.
var (
	ErrManifestMissing    = errors.New("lock file not found")
	ErrManifestUnreadable = errors.New("lock file is unreadable")
)

// FileRef records the resolved state of one tracked file at lock time.
// A nil Version means the content matched no known snapshot (dirty).
type FileRef struct {
	Version *version.Triple `json:"version"`
	Hash    string          `json:"hash"`
}

// Manifest is the project-wide lock document, fully replaced on each
// generation.
type Manifest struct {
	Version     int                `json:"version"`
	GeneratedAt string             `json:"generated_at"`
	Files       map[string]FileRef `json:"files"`
}

// Path returns the manifest location for a project root.
func Path(root string) string {
	return filepath.Join(root, config.LockFile)
}

// Generate resolves every tracked file whose working copy currently
// exists and records its content identity. Files absent from the
// working tree are excluded entirely: absence cannot be locked.
// Per-file failures are collected and never abort the scan.
func Generate(c *store.Context) (Manifest, []store.Problem, error) {
	files, problems, err := c.ListTracked()
	if err != nil {
		return Manifest{}, nil, err
	}

	m := Manifest{
		Version:     FormatVersion,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Files:       make(map[string]FileRef, len(files)),
	}

	for _, tf := range files {
		if !tf.Exists {
			continue
		}

		data, err := c.FS.ReadFile(c.WorkingPath(tf.Path))
		if err != nil {
			problems = append(problems, store.Problem{Path: tf.Path, Err: err})
			continue
		}

		ref := FileRef{Hash: c.Hash(data)}
		v, ok, err := c.IdentifyBytes(tf.Path, data)
		if err != nil {
			problems = append(problems, store.Problem{Path: tf.Path, Err: err})
			continue
		}
		if ok {
			ref.Version = &v
		}
		m.Files[tf.Path] = ref
	}

	logging.L().Debug("lock manifest generated",
		zap.Int("files", len(m.Files)),
		zap.Int("problems", len(problems)))
	return m, problems, nil
}

// Write persists the manifest at the project root, fully replacing any
// previous one.
func Write(c *store.Context, m Manifest) error {
	if err := util.WriteJSON(c.FS, Path(c.Root), m); err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	return nil
}

// Load reads the project's manifest. Callers branch on
// ErrManifestMissing and ErrManifestUnreadable with errors.Is.
func Load(c *store.Context) (Manifest, error) {
	p := Path(c.Root)
	var m Manifest
	if err := util.ReadJSON(c.FS, p, &m); err != nil {
		if c.FS.IsNotExist(err) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrManifestMissing, p)
		}
		return Manifest{}, fmt.Errorf("%w: %s: %v", ErrManifestUnreadable, p, err)
	}
	return m, nil
}
