package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	perrors "github.com/zhubert/replywriter/internal/errors"
)

// isolate points the user config dir at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"REPLYWRITER_CONFIG", "REPLYWRITER_ENDPOINT", "REPLYWRITER_TIMEOUT",
		"REPLYWRITER_PREFS_PATH", "REPLYWRITER_NOTIFICATIONS", "REPLYWRITER_COPY_NOTICE",
		"REPLYWRITER_LOG_PATH", "REPLYWRITER_LOG_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, DefaultEndpoint)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.CopyNotice != DefaultCopyNotice {
		t.Errorf("CopyNotice = %v, want %v", cfg.CopyNotice, DefaultCopyNotice)
	}
	if cfg.Notifications {
		t.Error("Notifications should default to false")
	}
	if cfg.Log.Path != DefaultLogPath {
		t.Errorf("Log.Path = %q, want %q", cfg.Log.Path, DefaultLogPath)
	}
	wantPrefs := filepath.Join(dir, "replywriter", "prefs.json")
	if cfg.PrefsPath != wantPrefs {
		t.Errorf("PrefsPath = %q, want %q", cfg.PrefsPath, wantPrefs)
	}
	wantFile := filepath.Join(dir, "replywriter", "config.toml")
	if cfg.FilePath() != wantFile {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), wantFile)
	}
}

func TestLoad_FromDefaultFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "replywriter", "config.toml"), `
endpoint = "http://localhost:8080/api/email/generate"
timeout = "5s"
notifications = true
copy_notice = "1500ms"

[log]
debug = true
path = "/tmp/rw-test.log"
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != "http://localhost:8080/api/email/generate" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.Notifications {
		t.Error("Notifications should be true")
	}
	if cfg.CopyNotice != 1500*time.Millisecond {
		t.Errorf("CopyNotice = %v, want 1.5s", cfg.CopyNotice)
	}
	if !cfg.Log.Debug || cfg.Log.Path != "/tmp/rw-test.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !perrors.Is(err, perrors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", perrors.GetKind(err))
	}
}

func TestLoad_ConfigEnvVar(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `endpoint = "https://example.com/generate"`)
	t.Setenv("REPLYWRITER_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "https://example.com/generate" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "replywriter", "config.toml"), `
endpoint = "http://from-file.test/generate"
timeout = "5s"
`)
	t.Setenv("REPLYWRITER_ENDPOINT", "http://from-env.test/generate")
	t.Setenv("REPLYWRITER_LOG_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "http://from-env.test/generate" {
		t.Errorf("Endpoint = %q, want env value", cfg.Endpoint)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want file value", cfg.Timeout)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug should come from REPLYWRITER_LOG_DEBUG")
	}
}

func TestLoadWithFlags_ChangedFlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("REPLYWRITER_ENDPOINT", "http://from-env.test/generate")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("endpoint", "", "")
	fs.Duration("timeout", DefaultTimeout, "")
	if err := fs.Parse([]string{"--endpoint", "http://from-flag.test/generate"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := LoadWithFlags("", fs)
	if err != nil {
		t.Fatalf("LoadWithFlags() error = %v", err)
	}
	if cfg.Endpoint != "http://from-flag.test/generate" {
		t.Errorf("Endpoint = %q, want flag value", cfg.Endpoint)
	}
	// Unset flags must not clobber defaults with their zero value.
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default", cfg.Timeout)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "replywriter", "config.toml"), `endpoint = "not a url"`)

	_, err := Load("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !perrors.Is(err, perrors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", perrors.GetKind(err))
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Endpoint:   "https://example.com/api/email/generate",
			Timeout:    time.Second,
			CopyNotice: time.Second,
			PrefsPath:  "/tmp/prefs.json",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "plain http", mutate: func(c *Config) { c.Endpoint = "http://localhost:8080/x" }},
		{name: "empty endpoint", mutate: func(c *Config) { c.Endpoint = "  " }, wantErr: true},
		{name: "relative endpoint", mutate: func(c *Config) { c.Endpoint = "/api/email/generate" }, wantErr: true},
		{name: "unsupported scheme", mutate: func(c *Config) { c.Endpoint = "ftp://example.com/x" }, wantErr: true},
		{name: "unparseable endpoint", mutate: func(c *Config) { c.Endpoint = "http://[::1" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "zero copy notice", mutate: func(c *Config) { c.CopyNotice = 0 }, wantErr: true},
		{name: "empty prefs path", mutate: func(c *Config) { c.PrefsPath = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.KindConfig) {
				t.Errorf("Validate() kind = %v, want KindConfig", perrors.GetKind(err))
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Endpoint = "http://127.0.0.1:9999/api/email/generate"
	cfg.Timeout = 90 * time.Second
	cfg.Notifications = true
	cfg.SetFilePath(filepath.Join(dir, "nested", "config.toml"))

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(cfg.FilePath())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Endpoint != cfg.Endpoint {
		t.Errorf("Endpoint = %q, want %q", loaded.Endpoint, cfg.Endpoint)
	}
	if loaded.Timeout != cfg.Timeout {
		t.Errorf("Timeout = %v, want %v", loaded.Timeout, cfg.Timeout)
	}
	if !loaded.Notifications {
		t.Error("Notifications should survive a round trip")
	}
	if loaded.PrefsPath != cfg.PrefsPath {
		t.Errorf("PrefsPath = %q, want %q", loaded.PrefsPath, cfg.PrefsPath)
	}
}

func TestConfig_SaveWithoutPath(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Save(); err == nil {
		t.Error("Save() should fail without a file path")
	}
}
