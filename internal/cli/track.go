package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/ui"
	"github.com/keshon/promptvc/internal/version"
)

var trackCmd = &cobra.Command{
	Use:     "track <file>",
	Aliases: []string{"add"},
	Short:   "Start tracking an existing file",
	Long: `Start tracking an existing file at version 0.1.0.

The file itself is never modified; its snapshot history lives under
` + config.HiddenDir + `/ at the project root.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	c, rel, err := contextForFile(args[0])
	if err != nil {
		return err
	}
	if !c.FS.Exists(c.WorkingPath(rel)) {
		return fmt.Errorf("file %s does not exist (use 'promptvc init' to create a new file)", args[0])
	}
	return startTracking(c, rel)
}

// startTracking records the initial snapshot of rel. Tracking an
// already-tracked file warns and succeeds.
func startTracking(c *store.Context, rel string) error {
	if c.IsTracked(rel) {
		ui.Warnf("Already tracking %s.", rel)
		return nil
	}
	if err := c.EnsureHidden(); err != nil {
		return err
	}

	data, err := c.FS.ReadFile(c.WorkingPath(rel))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", rel, err)
	}
	if _, err := c.AppendSnapshot(rel, data, version.Initial, "Initial commit"); err != nil {
		return err
	}

	ui.Successf("Started tracking %s at version %s", rel, version.Initial)
	ui.Mutedf("Note: versions are stored in %s/, the file itself stays untouched.", config.HiddenDir)
	return nil
}
