// Package ui renders command output: semantic colors, bordered tables
// and the yes/no confirmation prompt.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared by every style.
var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorHunk    = lipgloss.Color("#4db6ac")
)

// Styles bundles the styles used across command output.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style

	// Diff line styles.
	Added   lipgloss.Style
	Removed lipgloss.Style
	Hunk    lipgloss.Style
}

// Default returns the colored style set.
func Default() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Muted:   lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true),
		Added:   lipgloss.NewStyle().Foreground(colorSuccess),
		Removed: lipgloss.NewStyle().Foreground(colorError),
		Hunk:    lipgloss.NewStyle().Foreground(colorHunk),
	}
}

// Plain returns unstyled passthrough styles.
func Plain() Styles {
	return Styles{}
}

// Active is the style set the printers render with.
var Active = Default()

// DisableColor switches all output to plain text.
func DisableColor() {
	Active = Plain()
}

// Successf prints a green status line.
func Successf(format string, a ...any) {
	fmt.Println(Active.Success.Render(fmt.Sprintf(format, a...)))
}

// Warnf prints a yellow notice line.
func Warnf(format string, a ...any) {
	fmt.Println(Active.Warning.Render(fmt.Sprintf(format, a...)))
}

// Errorf prints a red error line to stderr.
func Errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, Active.Error.Render(fmt.Sprintf(format, a...)))
}

// Infof prints a blue informational line.
func Infof(format string, a ...any) {
	fmt.Println(Active.Info.Render(fmt.Sprintf(format, a...)))
}

// Mutedf prints a dimmed detail line.
func Mutedf(format string, a ...any) {
	fmt.Println(Active.Muted.Render(fmt.Sprintf(format, a...)))
}
