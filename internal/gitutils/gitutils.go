// Package gitutils resolves the source revision a run was measured at.
package gitutils

import (
	"os/exec"
	"strings"
)

// UnknownCommit is recorded when the revision cannot be resolved, for example
// outside a git work tree.
const UnknownCommit = "unknown"

// ShortCommit returns the abbreviated HEAD revision of the current work tree,
// or UnknownCommit if git is missing or the directory is not a repository.
func ShortCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return UnknownCommit
	}
	commit := strings.TrimSpace(string(out))
	if commit == "" {
		return UnknownCommit
	}
	return commit
}
