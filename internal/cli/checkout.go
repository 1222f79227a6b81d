package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/ui"
	"github.com/keshon/promptvc/internal/version"
)

var checkoutYes bool

var checkoutCmd = &cobra.Command{
	Use:   "checkout <file> <version>",
	Short: "Restore a stored version over the working file",
	Long: `Restore a stored version over the working file, recreating parent
directories when the file or its directory was deleted.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)

	checkoutCmd.Flags().BoolVarP(&checkoutYes, "yes", "y", false, "skip the confirmation prompt")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	c, rel, err := contextForFile(args[0])
	if err != nil {
		return err
	}

	h, err := c.LoadHistory(rel)
	if err != nil {
		return err
	}
	entry, ok := h.Find(version.Parse(args[1]))
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrVersionNotFound, args[1])
	}

	prompt := fmt.Sprintf("Overwrite %s with version %s?", args[0], entry.Version)
	if !c.FS.Exists(c.WorkingPath(rel)) {
		prompt = fmt.Sprintf("File %s is missing. Restore version %s?", args[0], entry.Version)
	}
	if !checkoutYes && !ui.Confirm(prompt) {
		return errors.New("aborted")
	}

	if err := c.Restore(rel, entry); err != nil {
		return err
	}

	ui.Warnf("Restored %s to %s", entry.Version, rel)
	return nil
}
