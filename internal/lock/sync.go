package lock

import (
	"fmt"

	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/util"
)

// Action classifies what sync did with one manifest entry.
type Action int

const (
	ActionSkipped Action = iota
	ActionRestored
	ActionFailed
)

// FileResult is the per-entry outcome of a sync run.
type FileResult struct {
	Path   string
	Action Action
	Reason string
	Err    error
}

// Result aggregates a sync run.
type Result struct {
	Restored int
	Skipped  int
	Failed   int
	Files    []FileResult
}

// Sync reconciles the working tree to the manifest, entry by entry in
// path order. Entries recorded as dirty are skipped, entries whose
// live identity already matches are no-ops, everything else is
// restored from its snapshot. One bad entry never aborts the rest;
// sync never prompts.
func Sync(c *store.Context, m Manifest) Result {
	var res Result
	for _, rel := range util.SortedKeys(m.Files) {
		fr := syncFile(c, rel, m.Files[rel])
		res.Files = append(res.Files, fr)
		switch fr.Action {
		case ActionRestored:
			res.Restored++
		case ActionSkipped:
			res.Skipped++
		case ActionFailed:
			res.Failed++
		}
	}
	return res
}

func syncFile(c *store.Context, rel string, ref FileRef) FileResult {
	if ref.Version == nil {
		return FileResult{Path: rel, Action: ActionSkipped, Reason: "dirty at lock time"}
	}

	live, ok, err := c.Identify(rel)
	if err != nil {
		return FileResult{Path: rel, Action: ActionFailed, Err: err}
	}
	if ok && live == *ref.Version {
		return FileResult{Path: rel, Action: ActionSkipped, Reason: "already in sync"}
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return FileResult{Path: rel, Action: ActionFailed, Err: err}
	}
	entry, found := h.Find(*ref.Version)
	if !found {
		return FileResult{
			Path:   rel,
			Action: ActionFailed,
			Err:    fmt.Errorf("%w: %s", store.ErrVersionNotFound, ref.Version),
		}
	}

	if err := c.Restore(rel, entry); err != nil {
		return FileResult{Path: rel, Action: ActionFailed, Err: err}
	}
	return FileResult{Path: rel, Action: ActionRestored, Reason: "restored to " + ref.Version.String()}
}
