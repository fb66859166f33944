package cmd

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/app"
	"github.com/zhubert/replywriter/internal/clipboard"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/generation"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/prefs"
	"github.com/zhubert/replywriter/internal/session"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "replywriter",
	Short: "Write replies to emails from your terminal",
	Long: `replywriter is a TUI for drafting email replies. Paste the email you
received, pick a tone and a generation service writes the reply for you.
Copy it to the clipboard with one key.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/replywriter/config.toml)")
	rootCmd.PersistentFlags().String("endpoint", "", "Generation service URL")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout, e.g. 30s")
	rootCmd.PersistentFlags().String("prefs-path", "", "Preferences file holding the theme")
	rootCmd.Flags().Bool("notifications", false, "Desktop notification when a reply is ready")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("replywriter %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("replywriter %s\n", version)
}

// loadConfig reads the config file, environment and any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithFlags(configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg.Log.Debug && !quietMode {
		logger.SetDebug(true)
	}
	return cfg, nil
}

// systemClipboard receives copied replies.
var systemClipboard session.ClipboardWriter = clipboard.System{}

// newSession wires a session to the configured service, the preferences
// file and the system clipboard.
func newSession(cfg *config.Config, log *slog.Logger) *session.Session {
	client := generation.NewHTTPClient(cfg.Endpoint, cfg.Timeout, version)
	store := prefs.NewThemeStore(prefs.NewFileStore(cfg.PrefsPath), log)
	return session.New(client, store,
		session.WithClipboard(systemClipboard),
		session.WithCopyNoticeDuration(cfg.CopyNotice),
		session.WithLogger(log),
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Path); err != nil {
		return err
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	log := logger.ComponentLogger("Session")
	log.Info("starting", "version", version, "endpoint", cfg.Endpoint, "config", cfg.FilePath())

	// Create and run the app
	m := app.New(cfg, newSession(cfg, log), version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
