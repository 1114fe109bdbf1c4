package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zulutools/zulusetup/internal/bootstrap"
	"github.com/zulutools/zulusetup/internal/config"
	"github.com/zulutools/zulusetup/internal/output"
	"github.com/zulutools/zulusetup/internal/platform"
)

var (
	jdkVersionFlag int
	forceFlag      bool
)

func addInstallCommand(parent *cobra.Command) {
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Ensure a Zulu JDK is installed",
		Long:  "Check for a working Java runtime and download and install an Azul Zulu JDK if none is found.",
		Args:  cobra.NoArgs,
		RunE:  runInstall,
	}

	installCmd.Flags().IntVar(&jdkVersionFlag, "jdk-version", 0, "JDK major version to install (default: config file or 21)")
	installCmd.Flags().BoolVar(&forceFlag, "force", false, "Install even if a runtime is already on PATH")

	parent.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	config.SetConfigDir(ConfigDir)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	major := jdkVersionFlag
	if major == 0 {
		major = cfg.JDKVersion
	}
	if major == 0 {
		major = config.DefaultJDKVersion
	}

	pctx, err := platform.Current()
	if err != nil {
		if output.IsJSON() {
			return output.PrintError(cmd.ErrOrStderr(), "unsupported_platform", err.Error())
		}
		return err
	}

	orch := bootstrap.New(pctx, cfg.APIBase)
	orch.Force = forceFlag

	res, err := orch.Run(cmd.Context(), major)
	if err != nil {
		if output.IsJSON() {
			return output.PrintError(cmd.ErrOrStderr(), "install_error", err.Error())
		}
		return fmt.Errorf("installing JDK %d: %w", major, err)
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), res)
	}

	out := cmd.OutOrStdout()
	switch res.Mode {
	case bootstrap.ModeExisting:
		output.OK(out, "Java %s is already installed.", res.Version)
		return nil
	case bootstrap.ModeNativeInstaller:
		output.OK(out, "Zulu JDK %d installed via MSI.", major)
	default:
		output.OK(out, "Zulu JDK %d installed at %s", major, res.RuntimeRoot)
	}

	if res.ReusedExisting {
		output.Warn(out, "An install already existed at %s and was kept as-is.", res.RuntimeRoot)
	}
	if !res.EnvIntegrated {
		output.Warn(out, "JAVA_HOME/PATH could not be persisted; set them manually to %s.", res.RuntimeRoot)
	} else if res.Note != "" {
		fmt.Fprintln(out, res.Note)
	}
	if !res.Verified {
		output.Warn(out, "Installed, but %s did not respond to -version.", res.ExecPath)
	}
	return nil
}
