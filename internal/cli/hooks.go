package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/hooks"
	"github.com/keshon/promptvc/internal/ui"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage git hooks",
}

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the pre-commit hook that refreshes the lock manifest",
	Args:  cobra.NoArgs,
	RunE:  runHooksInstall,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
	hooksCmd.AddCommand(hooksInstallCmd)
}

func runHooksInstall(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	path, replaced, err := hooks.InstallPreCommit(c.FS, c.Root)
	if err != nil {
		return err
	}
	if replaced {
		ui.Warnf("Replaced existing pre-commit hook.")
	}

	ui.Successf("Hook installed: %s", path)
	return nil
}
