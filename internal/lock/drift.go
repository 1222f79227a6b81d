package lock

import (
	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/version"
)

// State classifies a tracked file against the lock manifest.
type State int

const (
	StateMissing State = iota
	StateActive
	StateSynced
	StateDrift
	StateModified
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "Missing"
	case StateActive:
		return "Active"
	case StateSynced:
		return "Synced"
	case StateDrift:
		return "Drift"
	case StateModified:
		return "Modified"
	default:
		return "Unknown"
	}
}

// FileStatus is one drift-report row.
type FileStatus struct {
	Path   string
	Locked *version.Triple // nil when absent from manifest or dirty at lock time
	Live   *version.Triple // nil when content matches no snapshot
	Exists bool
	State  State
}

// Report classifies every tracked file by combining its live content
// identity with the manifest. Read-only. A missing or unreadable
// manifest degrades to "no lock data" rather than failing: locked
// versions are all nil, so present files classify as Active or
// Modified.
func Report(c *store.Context) ([]FileStatus, []store.Problem, error) {
	files, problems, err := c.ListTracked()
	if err != nil {
		return nil, nil, err
	}

	manifest, lockErr := Load(c)

	var out []FileStatus
	for _, tf := range files {
		row := FileStatus{Path: tf.Path, Exists: tf.Exists}
		if lockErr == nil {
			if ref, ok := manifest.Files[tf.Path]; ok {
				row.Locked = ref.Version
			}
		}

		if !tf.Exists {
			row.State = StateMissing
			out = append(out, row)
			continue
		}

		live, ok, err := c.Identify(tf.Path)
		if err != nil {
			problems = append(problems, store.Problem{Path: tf.Path, Err: err})
			continue
		}
		if ok {
			row.Live = &live
		}
		row.State = classify(row.Locked, row.Live)
		out = append(out, row)
	}
	return out, problems, nil
}

// classify implements the drift table for a present working file.
func classify(locked, live *version.Triple) State {
	switch {
	case live == nil:
		return StateModified
	case locked == nil:
		return StateActive
	case *locked == *live:
		return StateSynced
	default:
		return StateDrift
	}
}
