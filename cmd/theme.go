package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:       "theme [toggle|light|dark]",
	Short:     "Show or change the saved theme",
	Long:      `Without an argument prints the saved theme. "toggle" flips it; "light" and "dark" set it.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle", prefs.Light.String(), prefs.Dark.String()},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	logger.SetupConsole(debugMode && !quietMode)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	action := ""
	if len(args) == 1 {
		action = args[0]
	}
	return applyTheme(cfg, action, cmd.OutOrStdout())
}

// applyTheme reads, flips or sets the theme in the preferences file and
// prints the resulting mode.
func applyTheme(cfg *config.Config, action string, out io.Writer) error {
	store := prefs.NewThemeStore(prefs.NewFileStore(cfg.PrefsPath), logger.ComponentLogger("Prefs"))

	current, err := store.Read()
	if err != nil {
		return fmt.Errorf("reading theme: %w", err)
	}

	next := current
	switch action {
	case "":
		fmt.Fprintln(out, current)
		return nil
	case "toggle":
		next = current.Toggle()
	default:
		mode, ok := prefs.ParseMode(action)
		if !ok {
			return fmt.Errorf("unknown theme %q", action)
		}
		next = mode
	}

	if err := store.Write(next); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	fmt.Fprintln(out, next)
	return nil
}
