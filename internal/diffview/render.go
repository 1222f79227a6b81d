package diffview

import (
	"fmt"
	"io"

	"github.com/keshon/promptvc/internal/ui"
)

// Render writes hunks as a unified diff with the given side labels.
func Render(w io.Writer, oldLabel, newLabel string, hunks []Hunk) {
	if len(hunks) == 0 {
		fmt.Fprintln(w, ui.Active.Muted.Render("No differences."))
		return
	}

	fmt.Fprintln(w, ui.Active.Removed.Render("--- "+oldLabel))
	fmt.Fprintln(w, ui.Active.Added.Render("+++ "+newLabel))

	for _, h := range hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		fmt.Fprintln(w, ui.Active.Hunk.Render(header))

		for _, l := range h.Lines {
			switch l.Kind {
			case KindAdded:
				fmt.Fprintln(w, ui.Active.Added.Render("+"+l.Content))
			case KindRemoved:
				fmt.Fprintln(w, ui.Active.Removed.Render("-"+l.Content))
			default:
				fmt.Fprintln(w, " "+l.Content)
			}
		}
	}
}
