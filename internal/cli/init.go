package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/templates"
	"github.com/keshon/promptvc/internal/ui"
	"github.com/keshon/promptvc/internal/util"
)

var initTemplate string

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create a new file from a template and start tracking it",
	Long: `Create a new file from a template and start tracking it at 0.1.0.
Parent directories are created as needed.

Examples:
  promptvc init prompts/extract.prompty
  promptvc init notes.md --template openai`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "template name (see 'promptvc template list')")
}

func runInit(cmd *cobra.Command, args []string) error {
	c, rel, err := contextForFile(args[0])
	if err != nil {
		return err
	}

	target := c.WorkingPath(rel)
	if c.FS.Exists(target) {
		return fmt.Errorf("%w: %s (use 'promptvc track' for existing files)", store.ErrTargetExists, args[0])
	}

	cat := templates.Catalog(c.FS, c.Root)
	name := initTemplate
	if name == "" {
		name = templates.DefaultFor(filepath.Ext(target))
	}

	content := ""
	if tpl, ok := cat[name]; ok {
		content = tpl.Content
		ui.Mutedf("Using template: %s", name)
	} else {
		ui.Warnf("Template %q not found, creating an empty file.", name)
		ui.Mutedf("Available: %s", strings.Join(util.SortedKeys(cat), ", "))
	}

	dir := filepath.Dir(target)
	if !c.FS.Exists(dir) {
		if err := c.FS.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		ui.Mutedf("Created directory: %s", dir)
	}

	ui.Infof("Creating %s ...", args[0])
	if err := c.FS.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}

	return startTracking(c, rel)
}
