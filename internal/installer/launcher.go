package installer

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"scipion-installer/internal/logger"
)

// LauncherName is the launcher's file name under the install home.
const LauncherName = "scipion3"

//go:embed launcher.tmpl
var launcherSource string

var launcherTemplate = template.Must(template.New(LauncherName).Parse(launcherSource))

// launcherVars fills the two placeholders of the launcher template.
type launcherVars struct {
	EnvVar   string
	Activate string
}

// LauncherPath is where the launcher is written.
func (b *Builder) LauncherPath() string {
	return filepath.Join(b.Home, LauncherName)
}

// RenderLauncher renders the launcher script for the builder's environment style.
func (b *Builder) RenderLauncher() (string, error) {
	vars := launcherVars{
		EnvVar:   "VIRTUAL_ENV",
		Activate: VirtualenvActivationCmd(b.Home),
	}
	if b.Style == CondaEnv {
		vars = launcherVars{
			EnvVar:   "CONDA_DEFAULT_ENV",
			Activate: CondaInitCmd(b.Shell) + " && " + CondaActivationCmd(),
		}
	}

	var sb strings.Builder
	if err := launcherTemplate.Execute(&sb, vars); err != nil {
		return "", Wrap(err, "Could not render the launcher")
	}
	return sb.String(), nil
}

// GenerateLauncher writes the executable launcher under the install home and
// returns its path. A dry run prints the would-be content to out instead.
func (b *Builder) GenerateLauncher(dry bool, out io.Writer) (string, error) {
	path := b.LauncherPath()
	content, err := b.RenderLauncher()
	if err != nil {
		return "", err
	}

	if dry {
		rule := strings.Repeat("_", 40)
		fmt.Fprintf(out, "A launcher script would've been created at %s with the following content:\n", path)
		fmt.Fprintf(out, "%s\n%s%s\n", rule, content, rule)
		return path, nil
	}

	logger.Debug("[DEBUG] Writing launcher to %s\n", path)
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return "", Wrap(err, "Could not write the launcher at %s", path)
	}
	// WriteFile leaves the mode of an existing file alone and is subject to umask.
	if err := os.Chmod(path, 0755); err != nil {
		return "", Wrap(err, "Could not make %s executable", path)
	}
	return path, nil
}
