package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "savings-planner"

// Environment variables that override settings.
const (
	EnvRedisAddr = "SAVINGS_REDIS_ADDR"
	EnvHistoryDB = "SAVINGS_HISTORY_DB"
	EnvLogFile   = "SAVINGS_LOG_FILE"
	EnvLogLevel  = "SAVINGS_LOG_LEVEL"
	EnvWorkers   = "SAVINGS_WORKERS"
)

// Settings holds user preferences for the CLI.
type Settings struct {
	General GeneralSettings `toml:"general"`
	Cache   CacheSettings   `toml:"cache"`
	History HistorySettings `toml:"history"`
	Logging LoggingSettings `toml:"logging"`
}

// GeneralSettings holds general preferences.
type GeneralSettings struct {
	DefaultFormat string `toml:"default_format"`
	Workers       int    `toml:"workers"` // 0 means one per CPU
}

// CacheSettings configures suggestion caching. An empty address disables Redis.
type CacheSettings struct {
	RedisAddr  string `toml:"redis_addr,omitempty"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// HistorySettings configures the run history database.
type HistorySettings struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path,omitempty"`
}

// LoggingSettings configures the log file.
type LoggingSettings struct {
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	Level      string `toml:"level"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			DefaultFormat: "console",
		},
		Cache: CacheSettings{
			TTLSeconds: 3600,
		},
		History: HistorySettings{
			Enabled: true,
			DBPath:  filepath.Join(DataDir(), "history.db"),
		},
		Logging: LoggingSettings{
			MaxSizeMB:  5,
			MaxBackups: 3,
			Level:      "info",
		},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path, returning defaults if it doesn't exist.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes the settings to the default location.
func SaveSettings(s Settings) error {
	return SaveSettingsTo(SettingsPath(), s)
}

// SaveSettingsTo writes the settings to path.
func SaveSettingsTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(s)
}

// LoadEnv loads .env files into the process environment. Missing files are
// ignored; existing variables are never overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvRedisAddr); v != "" {
		s.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvHistoryDB); v != "" {
		s.History.DBPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.Logging.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid worker count %q", EnvWorkers, v)
		}
		s.General.Workers = n
	}
	return nil
}

// CacheTTL returns the cache entry lifetime. Zero keeps entries until evicted.
func (s Settings) CacheTTL() time.Duration {
	if s.Cache.TTLSeconds <= 0 {
		return 0
	}
	return time.Duration(s.Cache.TTLSeconds) * time.Second
}
