package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/lock"
	"github.com/keshon/promptvc/internal/ui"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Record the current version of every tracked file",
	Long: `Write ` + config.LockFile + ` at the project root, recording the
identified version and content hash of every tracked file that exists.
Run this before 'git commit' so the manifest travels with the code.`,
	Args: cobra.NoArgs,
	RunE: runLock,
}

func init() {
	rootCmd.AddCommand(lockCmd)
}

func runLock(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	m, problems, err := lock.Generate(c)
	if err != nil {
		return err
	}
	for _, p := range problems {
		ui.Warnf("Warning: %v", p)
	}

	if err := lock.Write(c, m); err != nil {
		return err
	}

	ui.Successf("Lock file written: %s (%d files)", config.LockFile, len(m.Files))
	return nil
}
