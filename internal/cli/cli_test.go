package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/keshon/promptvc/internal/ui"
)

// newProject chdirs into a fresh project directory with a .git marker
// and resets all command flags and configuration.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	viper.Reset()
	viper.Set("template.dir", filepath.Join(dir, "user-templates"))
	t.Cleanup(viper.Reset)

	resetFlags()
	return dir
}

func resetFlags() {
	initTemplate = ""
	commitMessage = ""
	commitMajor = false
	commitMinor = false
	commitPatch = false
	commitForce = false
	checkoutYes = false
	ui.Input = strings.NewReader("")
	ui.DisableColor()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
