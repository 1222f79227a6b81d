package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/ui"
	"github.com/keshon/promptvc/internal/version"
)

var (
	commitMessage string
	commitMajor   bool
	commitMinor   bool
	commitPatch   bool
	commitForce   bool
)

var commitCmd = &cobra.Command{
	Use:   "commit <file>",
	Short: "Snapshot the current content as a new version",
	Long: `Snapshot the current content of a tracked file as a new version.

The default bump is minor (0.1.0 -> 0.2.0). Committing byte-identical
content asks for confirmation unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit message")
	commitCmd.Flags().BoolVar(&commitMajor, "major", false, "bump the major version")
	commitCmd.Flags().BoolVar(&commitMinor, "minor", false, "bump the minor version (default)")
	commitCmd.Flags().BoolVar(&commitPatch, "patch", false, "bump the patch version")
	commitCmd.Flags().BoolVar(&commitForce, "force", false, "commit even when nothing changed")
}

func runCommit(cmd *cobra.Command, args []string) error {
	c, rel, err := contextForFile(args[0])
	if err != nil {
		return err
	}
	if !c.IsTracked(rel) {
		return fmt.Errorf("%w: %s (run 'promptvc track %s' first)", store.ErrNotTracked, rel, args[0])
	}

	data, err := c.FS.ReadFile(c.WorkingPath(rel))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return err
	}

	if len(h) > 0 && !commitForce {
		last, err := c.ReadArtifact(rel, h[0])
		if err == nil && bytes.Equal(last, data) {
			ui.Warnf("No changes detected since the last snapshot.")
			if !ui.Confirm("Force commit?") {
				return fmt.Errorf("%w, commit aborted", store.ErrNoChange)
			}
		}
	}

	next := h.Latest().Bump(version.KindFromFlags(commitMajor, commitMinor, commitPatch))
	msg := commitMessage
	if msg == "" {
		msg = "Update version to " + next.String()
	}

	if _, err := c.AppendSnapshot(rel, data, next, msg); err != nil {
		return err
	}

	ui.Successf("Committed %s: %s", next, msg)
	return nil
}
