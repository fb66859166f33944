package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Prints the configuration after merging defaults, the config file, REPLYWRITER_* environment variables and flags.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), cfg)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			cfg.SetFilePath(configPath)
		}
		return initConfigFile(cfg, forceInit, cmd.OutOrStdout())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func printConfig(out io.Writer, cfg *config.Config) {
	rows := []struct {
		key   string
		value any
	}{
		{"file", cfg.FilePath()},
		{"endpoint", cfg.Endpoint},
		{"timeout", cfg.Timeout},
		{"prefs_path", cfg.PrefsPath},
		{"notifications", cfg.Notifications},
		{"copy_notice", cfg.CopyNotice},
		{"log.path", cfg.Log.Path},
		{"log.debug", cfg.Log.Debug},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%-14s %v\n", r.key, r.value)
	}
}

// initConfigFile saves cfg unless a file already exists and force is unset.
func initConfigFile(cfg *config.Config, force bool, out io.Writer) error {
	path := cfg.FilePath()
	if path == "" {
		return fmt.Errorf("no config file location; pass --config")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
