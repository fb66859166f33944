package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and saved preferences",
	Long: `Deletes the debug log and the preferences file (with its lock file), so
the next start uses the light theme again. The config file is left alone.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runCleanWithReader(cfg, os.Stdin, cmd.OutOrStdout())
}

// cleanTargets lists the files clean removes that currently exist.
func cleanTargets(cfg *config.Config) []string {
	candidates := []string{cfg.Log.Path}
	if cfg.PrefsPath != "" {
		candidates = append(candidates, cfg.PrefsPath, cfg.PrefsPath+".lock")
	}

	var existing []string
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(cfg *config.Config, input io.Reader, out io.Writer) error {
	targets := cleanTargets(cfg)
	if len(targets) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, path := range targets {
		fmt.Fprintf(out, "  - %s\n", path)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// The log file may be open in this process
	logger.Close()

	removed := 0
	var errs []error
	for _, path := range targets {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return errors.Join(errs...)
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
