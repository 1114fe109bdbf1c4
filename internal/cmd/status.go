package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zulutools/zulusetup/internal/config"
	"github.com/zulutools/zulusetup/internal/install"
	"github.com/zulutools/zulusetup/internal/jdk"
	"github.com/zulutools/zulusetup/internal/output"
	"github.com/zulutools/zulusetup/internal/platform"
)

func addStatusCommand(parent *cobra.Command) {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show Java status",
		Long:  "Detect and display information about the Java installation visible to this machine.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	parent.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	config.SetConfigDir(ConfigDir)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pctx, err := platform.Current()
	if err != nil {
		if output.IsJSON() {
			return output.PrintError(cmd.ErrOrStderr(), "unsupported_platform", err.Error())
		}
		return err
	}

	// Probe both privilege variants of the managed base so a status check
	// run without elevation still sees a system-wide install.
	elevated := install.ChooseBase(&platform.Context{
		Identity: pctx.Identity, Elevated: true,
		Home: pctx.Home, ProgramFiles: pctx.ProgramFiles,
	})
	user := install.ChooseBase(&platform.Context{
		Identity: pctx.Identity, Elevated: false,
		Home: pctx.Home, ProgramFiles: pctx.ProgramFiles,
	})

	info := jdk.Detect(elevated.BaseDir, user.BaseDir)

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), info)
	}

	out := cmd.OutOrStdout()
	if !info.Found {
		fmt.Fprintln(out, "Java: not found")
		fmt.Fprintln(out, "Run 'zulusetup install' to install an Azul Zulu JDK.")
		return nil
	}

	fmt.Fprintf(out, "Java: %s\n", info.Version)
	fmt.Fprintf(out, "Path: %s\n", info.Path)
	fmt.Fprintf(out, "Home: %s\n", info.Home)
	fmt.Fprintf(out, "Source: %s\n", info.Source)

	min := cfg.JDKVersion
	if min == 0 {
		min = config.DefaultJDKVersion
	}
	if !jdk.MeetsMinimum(info.Version, min) {
		fmt.Fprintf(out, "\nWarning: Java %s does not meet version %d.\n", info.Version, min)
		fmt.Fprintln(out, "Run 'zulusetup install' to install a newer JDK.")
	}
	return nil
}
