package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zulutools/zulusetup/internal/output"
)

var Version = "dev"

var (
	jsonFlag    bool
	verboseFlag bool
	quietFlag   bool
	ConfigDir   string
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addInstallCommand(cmd)
	addStatusCommand(cmd)
	addConfigCommand(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "zulusetup",
		Short:   "Bootstrap a Zulu JDK",
		Long:    "zulusetup — ensure a Java runtime is present, installing an Azul Zulu JDK when it is not.",
		Version: fmt.Sprintf("zulusetup v%s", Version),

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag && quietFlag {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			if jsonFlag {
				quietFlag = true
			}
			output.SetFlags(jsonFlag, quietFlag, verboseFlag)

			switch {
			case verboseFlag:
				logrus.SetLevel(logrus.DebugLevel)
			case quietFlag:
				logrus.SetLevel(logrus.ErrorLevel)
			default:
				logrus.SetLevel(logrus.WarnLevel)
			}
			return nil
		},
		Args: cobra.NoArgs,
		// Running the bare binary bootstraps, matching its use from
		// provisioning scripts.
		RunE: runInstall,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&jsonFlag, "json", "j", false, "Output as JSON")
	pflags.BoolVarP(&verboseFlag, "verbose", "v", false, "Extra detail to stderr")
	pflags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
	pflags.StringVar(&ConfigDir, "config-dir", "", "Override config directory (default: ~/.zulusetup)")

	rootCmd.Flags().IntVar(&jdkVersionFlag, "jdk-version", 0, "JDK major version to install (default: config file or 21)")
	rootCmd.Flags().BoolVar(&forceFlag, "force", false, "Install even if a runtime is already on PATH")

	return rootCmd
}
