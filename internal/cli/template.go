package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/templates"
	"github.com/keshon/promptvc/internal/ui"
	"github.com/keshon/promptvc/internal/util"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage scaffolding templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a file as a user template",
	Args:  cobra.ExactArgs(2),
	RunE:  runTemplateAdd,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateAddCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	cat := templates.Catalog(c.FS, c.Root)
	rows := make([][]string, 0, len(cat))
	for _, name := range util.SortedKeys(cat) {
		rows = append(rows, []string{name, cat[name].Source.String()})
	}

	fmt.Println(ui.Table("Available Templates", []string{"Name", "Source"}, rows))
	return nil
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	c, err := contextForCwd()
	if err != nil {
		return err
	}

	src, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", args[1], err)
	}

	dest, err := templates.Add(c.FS, src, args[0])
	if err != nil {
		return err
	}

	ui.Successf("Template registered: %s", args[0])
	ui.Mutedf("Location: %s", dest)
	return nil
}
