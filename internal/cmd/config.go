package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zulutools/zulusetup/internal/config"
	"github.com/zulutools/zulusetup/internal/output"
)

func addConfigCommand(parent *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration defaults",
		Long:  "Display the defaults from config.toml that seed the install flags.",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration default",
		Long:  "Set a default in config.toml. Keys: jdk_version, api_base.",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	configCmd.AddCommand(setCmd)
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	config.SetConfigDir(ConfigDir)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), cfg)
	}

	out := cmd.OutOrStdout()
	jdkVersion := cfg.JDKVersion
	if jdkVersion == 0 {
		jdkVersion = config.DefaultJDKVersion
	}
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = "(default)"
	}
	fmt.Fprintf(out, "jdk_version: %d\n", jdkVersion)
	fmt.Fprintf(out, "api_base: %s\n", apiBase)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	config.SetConfigDir(ConfigDir)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "jdk_version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("jdk_version must be an integer, got %q", value)
		}
		cfg.JDKVersion = v
	case "api_base":
		cfg.APIBase = value
	default:
		return fmt.Errorf("unknown config key %q (valid: jdk_version, api_base)", key)
	}

	return config.Save(cfg)
}
