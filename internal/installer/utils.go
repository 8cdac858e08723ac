package installer

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"scipion-installer/internal/logger"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// detectShell returns the conda hook flavor for the invoking user's shell: the
// basename of $SHELL, or "posix" when SHELL is unset.
func detectShell() string {
	shell := os.Getenv("SHELL")
	logger.Debug("[DEBUG] Detected shell environment: %s\n", shell)

	if shell == "" {
		return "posix"
	}
	return filepath.Base(shell)
}

// detectPython picks the interpreter used to create a virtualenv.
func detectPython() string {
	for _, candidate := range []string{"python3", "python"} {
		if path, err := lookPath(candidate); err == nil {
			logger.Debug("[DEBUG] Using python interpreter %s\n", path)
			return path
		}
	}
	return "python3"
}

// pathExists reports whether anything exists at path.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// quote returns s ready to be pasted into a sh command line. Plain words are
// left untouched so generated commands stay readable.
func quote(s string) string {
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
