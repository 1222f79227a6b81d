package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List tracked files, or the history of one file",
	Long: `Without an argument, list every tracked file with its latest version.
With a file argument, show that file's version history.

Examples:
  promptvc list
  promptvc list prompts/extract.prompty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return listHistory(args[0])
	}
	return listAll()
}

func listHistory(arg string) error {
	c, rel, err := contextForFile(arg)
	if err != nil {
		return err
	}
	if !c.IsTracked(rel) {
		return fmt.Errorf("%w: no history for %s", store.ErrNotTracked, arg)
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(h))
	for i, e := range h {
		marker := "  "
		if i == 0 {
			marker = "* "
		}
		rows = append(rows, []string{marker + e.Version.String(), e.Timestamp, e.Message})
	}

	fmt.Println(ui.Table("History: "+filepath.Base(rel), []string{"Version", "Time", "Message"}, rows))
	return nil
}

func listAll() error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	files, problems, err := c.ListTracked()
	if err != nil {
		return err
	}
	for _, p := range problems {
		ui.Warnf("Warning: %v", p)
	}
	if len(files) == 0 {
		ui.Warnf("No tracked files found.")
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		status := ui.Active.Success.Render("Active")
		if !f.Exists {
			status = ui.Active.Error.Render("Missing")
		}
		rows = append(rows, []string{status, f.Path, f.Latest.String(), f.LastModified})
	}

	fmt.Println(ui.Table("All Tracked Files", []string{"Status", "File Path", "Latest Ver", "Last Modified"}, rows))
	return nil
}
