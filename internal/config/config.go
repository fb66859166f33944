package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	perrors "github.com/zhubert/replywriter/internal/errors"
)

// Default values applied before the config file and environment are read.
const (
	DefaultEndpoint   = "https://email-writer-sb-latest.onrender.com/api/email/generate"
	DefaultTimeout    = 60 * time.Second
	DefaultCopyNotice = 3 * time.Second
	DefaultLogPath    = "/tmp/replywriter-debug.log"

	envPrefix     = "REPLYWRITER"
	configEnvVar  = "REPLYWRITER_CONFIG"
	configName    = "config"
	configType    = "toml"
	appDirName    = "replywriter"
	prefsFileName = "prefs.json"
)

// Config holds the application configuration.
type Config struct {
	Endpoint      string        `mapstructure:"endpoint"`      // Generation service URL
	Timeout       time.Duration `mapstructure:"timeout"`       // Per-request HTTP timeout
	PrefsPath     string        `mapstructure:"prefs_path"`    // Theme preference file
	Notifications bool          `mapstructure:"notifications"` // Desktop notification when a reply is ready
	CopyNotice    time.Duration `mapstructure:"copy_notice"`   // How long the copy confirmation stays visible
	Log           LogConfig     `mapstructure:"log"`

	filePath string
}

// LogConfig controls the debug log.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// Default returns a config populated with defaults only.
func Default() *Config {
	cfg := &Config{
		Endpoint:   DefaultEndpoint,
		Timeout:    DefaultTimeout,
		CopyNotice: DefaultCopyNotice,
		Log:        LogConfig{Path: DefaultLogPath},
	}
	if dir, err := configDir(); err == nil {
		cfg.PrefsPath = filepath.Join(dir, prefsFileName)
		cfg.filePath = filepath.Join(dir, configName+"."+configType)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("prefs_path", d.PrefsPath)
	v.SetDefault("notifications", false)
	v.SetDefault("copy_notice", d.CopyNotice)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.debug", false)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the config with no command-line overrides.
func Load(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadWithFlags reads configuration from defaults, the config file, the
// REPLYWRITER_* environment and finally any flags in fs that were set on the
// command line. Flag names match config keys ("endpoint", "timeout", ...).
//
// path selects the config file; when empty REPLYWRITER_CONFIG is consulted,
// then $XDG_CONFIG_HOME/replywriter/config.toml. An explicitly named file must
// exist, the default one is optional.
func LoadWithFlags(path string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName(configName)
		path = filepath.Join(dir, configName+"."+configType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	}

	if fs != nil {
		for _, key := range []string{"endpoint", "timeout", "prefs_path", "notifications", "copy_notice"} {
			if f := fs.Lookup(flagName(key)); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, perrors.ConfigLoadFailed(path, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, fmt.Errorf("unmarshal config: %w", err))
	}
	cfg.filePath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagName maps a config key to its command-line flag.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Validate checks that the config can be used to build a generation client.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return perrors.ConfigInvalid("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return perrors.ConfigInvalid(fmt.Sprintf("endpoint %q is not a valid URL: %v", c.Endpoint, err))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return perrors.ConfigInvalid(fmt.Sprintf("endpoint %q must be an absolute http(s) URL", c.Endpoint))
	}
	if c.Timeout <= 0 {
		return perrors.ConfigInvalid(fmt.Sprintf("timeout must be positive, got %s", c.Timeout))
	}
	if c.CopyNotice <= 0 {
		return perrors.ConfigInvalid(fmt.Sprintf("copy_notice must be positive, got %s", c.CopyNotice))
	}
	if c.PrefsPath == "" {
		return perrors.ConfigInvalid("prefs_path is required")
	}
	return nil
}

// FilePath returns the config file this config was loaded from (or would be saved to).
func (c *Config) FilePath() string {
	return c.filePath
}

// SetFilePath overrides where Save writes.
func (c *Config) SetFilePath(path string) {
	c.filePath = path
}

// Save writes the config to its file path, creating the directory if needed.
func (c *Config) Save() error {
	if c.filePath == "" {
		return perrors.ConfigInvalid("config file path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("endpoint", c.Endpoint)
	v.Set("timeout", c.Timeout.String())
	v.Set("prefs_path", c.PrefsPath)
	v.Set("notifications", c.Notifications)
	v.Set("copy_notice", c.CopyNotice.String())
	v.Set("log.path", c.Log.Path)
	v.Set("log.debug", c.Log.Debug)

	if err := v.WriteConfigAs(c.filePath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
