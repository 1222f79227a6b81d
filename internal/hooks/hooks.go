// Package hooks installs the git pre-commit hook that refreshes the
// lock manifest before every commit.
package hooks

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/fs"
)

const preCommitName = "pre-commit"

const preCommitScript = `#!/bin/sh
# promptvc pre-commit hook: refresh the lock manifest and stage it.
promptvc lock || exit 1
git add ` + config.LockFile + `
`

// InstallPreCommit writes the pre-commit hook for the repository at
// root, replacing any existing hook file. It reports the hook path and
// whether a previous hook was overwritten.
func InstallPreCommit(fsys fs.FS, root string) (string, bool, error) {
	gitDir := filepath.Join(root, ".git")
	if !fsys.IsDir(gitDir) {
		return "", false, fmt.Errorf("not a git repository: %q has no .git directory", root)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := fsys.MkdirAll(hooksDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create hooks dir %q: %w", hooksDir, err)
	}

	path := filepath.Join(hooksDir, preCommitName)
	replaced := fsys.Exists(path)

	if err := fsys.WriteFile(path, []byte(preCommitScript), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to write hook %q: %w", path, err)
	}
	// WriteFile leaves the mode of a pre-existing file alone.
	if err := fsys.Chmod(path, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to mark hook executable: %w", err)
	}

	return path, replaced, nil
}
