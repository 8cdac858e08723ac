package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"scipion-installer/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
var debug bool

// opts collects the installation flags.
var opts installOptions

// rootCmd is the installer itself: `scipion-installer <path> [flags]`.
var rootCmd = &cobra.Command{
	Use:   "scipion-installer <path>",
	Short: "Install Scipion into <path>",
	Long: `Creates an isolated Python environment under <path>, installs Scipion into it
and writes a scipion3 launcher that activates the environment first.

Happy Scipioning!`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		launcher, err := install(ctx, opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		report(cmd.OutOrStdout(), launcher, opts.Dry, err)
	},
}

// Execute registers flags and runs the installer. Single-dash long flags such
// as -conda are accepted for compatibility with the historical installer.
func Execute() {
	rootCmd.SetArgs(legacyFlags(os.Args[1:]))
	_ = rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.Conda, "conda", false, "Use conda environments, otherwise virtualenv is used")
	flags.BoolVar(&opts.Dev, "dev", false, "Install components in devel mode")
	flags.BoolVar(&opts.NoXmipp, "noXmipp", false, "Skip the Xmipp installation. Xmipp is installed in devel mode under xmipp-bundle by default")
	flags.BoolVar(&opts.Dry, "dry", false, "Just show the commands without running them")
	flags.BoolVar(&opts.HTTPSClone, "httpsClone", false, "Only with -dev: clone over https instead of ssh")
	flags.StringVar(&opts.Repos, "repos", "", "YAML repository table replacing the built-in one")
	flags.StringVar(&opts.Python, "python", "", "Python interpreter used to create the virtualenv")
}
