package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"scipion-installer/internal/config"
	"scipion-installer/internal/installer"
	"scipion-installer/internal/logger"
	"scipion-installer/internal/state"
)

type installOptions struct {
	Conda      bool
	Dev        bool
	NoXmipp    bool
	Dry        bool
	HTTPSClone bool
	Repos      string
	Python     string
}

// install runs the installation phases in order and returns the launcher path.
// Nothing already done is rolled back when a later phase fails.
func install(ctx context.Context, o installOptions, path string, in io.Reader, out io.Writer) (string, error) {
	home, err := filepath.Abs(path)
	if err != nil {
		return "", installer.Wrap(err, "Invalid installation path %s", path)
	}

	cfg, err := config.LoadConfig(o.Repos)
	if err != nil {
		return "", installer.Wrap(err, "Cannot load the repository table")
	}

	prompt := installer.NewPrompter(in, out)

	style := installer.Virtualenv
	if o.Conda {
		style = installer.CondaEnv
		if err := installer.Require(ctx, prompt,
			"Conda installations will have a poor font and may affect your user experience. Are you sure you want to continue?",
			"Cancelling installation with conda."); err != nil {
			return "", err
		}
	}

	// Only developer installs work until scipion3 is released on PyPI.
	// Remove this line to honour -dev.
	o.Dev = true
	if err := installer.Require(ctx, prompt,
		"This is an early version of the installer. So far only works for developers installing an unstable version. Are you sure you want to continue?",
		"User cancelled development/unstable installation."); err != nil {
		return "", err
	}

	logger.Step("==> Checking required programs\n")
	if o.Dev {
		if err := installer.CheckProgram(installer.Git); err != nil {
			return "", err
		}
	}
	if o.Conda {
		if err := installer.CheckProgram(installer.Conda); err != nil {
			return "", err
		}
	}

	if prev := state.LoadReceipt(home); prev != nil {
		logger.Info("[INFO] Found a %s installation from %s in %s\n",
			prev.Environment, prev.InstalledAt.Format(time.RFC1123), home)
	}

	logger.Step("==> Preparing %s\n", home)
	if err := installer.NewHomeResolver(prompt, o.Dry).Resolve(ctx, home); err != nil {
		return "", err
	}

	b := installer.NewBuilder(home, style, o.HTTPSClone, cfg)
	if o.Python != "" {
		b.Python = o.Python
	}
	seq := b.EnvironmentCommand()
	seq.Extend(b.InstallationCommand(o.Dev, o.NoXmipp))

	logger.Step("==> Installing Scipion (%s, developer mode: %v)\n", style, o.Dev)
	runner := installer.NewRunner(o.Dry)
	runner.Stdin = prompt.Reader()
	runner.Stdout = out
	if err := runner.Run(ctx, seq.String()); err != nil {
		return "", err
	}

	logger.Step("==> Writing the launcher\n")
	launcher, err := b.GenerateLauncher(o.Dry, out)
	if err != nil {
		return "", err
	}

	if !o.Dry {
		receipt := &state.Receipt{
			Environment: style.String(),
			DevMode:     o.Dev,
			Xmipp:       o.Dev && !o.NoXmipp,
			Launcher:    launcher,
			InstalledAt: time.Now(),
		}
		if o.Dev {
			for _, repo := range cfg.Repositories {
				receipt.Repositories = append(receipt.Repositories, repo.Name)
			}
		}
		state.SaveReceipt(home, receipt)
	}
	return launcher, nil
}

// report prints the outcome of install. Every path returns normally: callers
// cannot tell a cancellation from a success by exit code.
func report(out io.Writer, launcher string, dry bool, err error) {
	var ie *installer.InstallationError
	switch {
	case err == nil:
		if dry {
			return
		}
		color.New(color.FgGreen, color.Bold).Fprint(out, "\n\nScipion has been successfully installed!! Happy EM processing!!\n\n")
		fmt.Fprintf(out, "You can launch Scipion using the launcher at %s\n", launcher)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "\nInstallation cancelled, probably by pressing \"Ctrl + c\".")
	case errors.As(err, &ie):
		color.New(color.FgRed).Fprintln(out, ie.Error())
		fmt.Fprintln(out, "Installation cancelled.")
	default:
		color.New(color.FgRed).Fprintln(out, err.Error())
		fmt.Fprintln(out, "Installation cancelled.")
	}
}
