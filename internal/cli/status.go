package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/lock"
	"github.com/keshon/promptvc/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show lock state and drift for every tracked file",
	Long: `Compare each tracked file's current content against its history and
the lock manifest. A missing manifest is fine: files then show as
Active or Modified.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	rows, problems, err := lock.Report(c)
	if err != nil {
		return err
	}
	for _, p := range problems {
		ui.Warnf("Warning: %v", p)
	}
	if len(rows) == 0 {
		ui.Warnf("No tracked files.")
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		lockVer := "-"
		if r.Locked != nil {
			lockVer = r.Locked.String()
		}
		content := "-"
		if r.Exists {
			if r.Live != nil {
				content = r.Live.String()
			} else {
				content = "(Dirty)"
			}
		}
		table = append(table, []string{r.Path, lockVer, content, styleState(r.State)})
	}

	fmt.Println(ui.Table("Status (Drift Check)", []string{"File", "Lock Ver", "Current Content", "Status"}, table))
	return nil
}

func styleState(s lock.State) string {
	switch s {
	case lock.StateSynced:
		return ui.Active.Success.Render(s.String())
	case lock.StateActive:
		return ui.Active.Info.Render(s.String())
	case lock.StateMissing:
		return ui.Active.Error.Render(s.String())
	default: // Drift, Modified
		return ui.Active.Warning.Render(s.String())
	}
}
