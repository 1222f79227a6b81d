package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/diffview"
	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/version"
)

var diffCmd = &cobra.Command{
	Use:   "diff <file> <version>",
	Short: "Diff the working file against a stored version",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	c, rel, err := contextForFile(args[0])
	if err != nil {
		return err
	}
	if !c.FS.Exists(c.WorkingPath(rel)) {
		return fmt.Errorf("file %s does not exist (use 'promptvc checkout' to restore it)", args[0])
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return err
	}
	entry, ok := h.Find(version.Parse(args[1]))
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrVersionNotFound, args[1])
	}

	old, err := c.ReadArtifact(rel, entry)
	if err != nil {
		return err
	}
	cur, err := c.FS.ReadFile(c.WorkingPath(rel))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}

	hunks := diffview.Compute(string(old), string(cur))
	diffview.Render(os.Stdout, "v"+entry.Version.String(), "current", hunks)
	return nil
}
