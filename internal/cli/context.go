package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/digest"
	"github.com/keshon/promptvc/internal/fs"
	"github.com/keshon/promptvc/internal/project"
	"github.com/keshon/promptvc/internal/store"
)

// newContext builds a store context anchored at the project root that
// contains start.
func newContext(start string) *store.Context {
	osfs := fs.NewOSFS()
	root := project.FindRoot(osfs, start)
	return store.NewContext(root, osfs, digest.New(config.SelectedHash()))
}

// contextForCwd anchors the context at the current directory's project.
func contextForCwd() (*store.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return newContext(cwd), nil
}

// contextForFile resolves a command's file argument into a context and
// the file's project-relative path.
func contextForFile(arg string) (*store.Context, string, error) {
	target, err := filepath.Abs(arg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %q: %w", arg, err)
	}
	c := newContext(target)
	rel, err := c.Rel(target)
	if err != nil {
		return nil, "", err
	}
	return c, rel, nil
}
