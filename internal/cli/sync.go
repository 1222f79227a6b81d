package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/lock"
	"github.com/keshon/promptvc/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Restore tracked files to their locked versions",
	Long: `Restore every tracked file to the version recorded in the lock
manifest. Run this after 'git checkout' or 'git pull' to bring the
working tree back in line. Files that were dirty at lock time are
left alone.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	m, err := lock.Load(c)
	if err != nil {
		if errors.Is(err, lock.ErrManifestMissing) {
			return fmt.Errorf("%w (run 'promptvc lock' first)", err)
		}
		return err
	}

	res := lock.Sync(c, m)
	for _, fr := range res.Files {
		switch fr.Action {
		case lock.ActionRestored:
			ui.Successf("%s: %s", fr.Path, fr.Reason)
		case lock.ActionFailed:
			ui.Errorf("%s: %v", fr.Path, fr.Err)
		default:
			ui.Mutedf("%s: %s", fr.Path, fr.Reason)
		}
	}

	ui.Successf("Sync complete: %d restored, %d skipped, %d failed",
		res.Restored, res.Skipped, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to sync", res.Failed)
	}
	return nil
}
