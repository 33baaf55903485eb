package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultYear             = 2021
	DefaultInputsDir        = "inputs"
	DefaultCookieEnv        = "AOC_SESSION"
	DefaultCookieFile       = "auth.txt"
	DefaultBaseURL          = "https://adventofcode.com"
	DefaultFetchTimeout     = 30 * time.Second
	DefaultFetchRetries     = 2
	DefaultUserAgent        = "github.com/aocarchive/aoc2021"
	DefaultWarmupRounds     = 1
	DefaultNumRounds        = 1
	DefaultBuildParallelism = 4
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogMaxSizeMB     = 10
	DefaultLogMaxBackups    = 3
)

// DefaultUsers are the two people whose solutions live in this archive.
var DefaultUsers = []string{"ahr", "ukr"}

var userPattern = regexp.MustCompile(`^\w+$`)

// Config is the full aoc.yaml tree.
type Config struct {
	// Year is the event year used when fetching inputs.
	Year int `yaml:"year"`

	// Users lists everyone allowed to own a solution directory.
	Users []string `yaml:"users"`

	// DefaultUser is used by setup and fetch when no user is given.
	// Defaults to the first entry of Users.
	DefaultUser string `yaml:"default_user"`

	// InputsDir holds one sub-directory per user with dayNN.txt files.
	InputsDir string `yaml:"inputs_dir"`

	Session SessionConfig `yaml:"session"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Run     RunConfig     `yaml:"run"`
	History HistoryConfig `yaml:"history"`
	Setup   SetupConfig   `yaml:"setup"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig says where to look for the session cookie.
type SessionConfig struct {
	// CookieEnv is the environment variable holding the cookie. A .env file
	// in the working directory is loaded before it is read.
	CookieEnv string `yaml:"cookie_env"`

	// CookieFile is a file whose content (trailing newlines stripped) is the
	// cookie. Consulted when the environment variable is empty.
	CookieFile string `yaml:"cookie_file"`
}

// Cookie returns the cookie from the environment, or "" if unset.
func (s SessionConfig) Cookie() string {
	if s.CookieEnv == "" {
		return ""
	}
	return os.Getenv(s.CookieEnv)
}

// FetchConfig controls input downloads.
type FetchConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   int           `yaml:"retries"`
	UserAgent string        `yaml:"user_agent"`
}

// RunConfig controls the timed runner.
type RunConfig struct {
	// WarmupRounds are executed but not measured.
	WarmupRounds int `yaml:"warmup_rounds"`

	// NumRounds are measured; the reported time is their mean.
	NumRounds int `yaml:"num_rounds"`

	// BuildParallelism bounds how many entries are built at once.
	BuildParallelism int `yaml:"build_parallelism"`

	// MetricsFile, when set, receives a Prometheus textfile of each run.
	MetricsFile string `yaml:"metrics_file"`
}

// HistoryConfig enables the SQLite run history.
type HistoryConfig struct {
	// Path is the database file. Empty disables history.
	Path string `yaml:"path"`
}

// SetupConfig controls scaffolding.
type SetupConfig struct {
	// Editor is launched on a freshly created directory. Empty skips it.
	Editor string `yaml:"editor"`
}

// LogConfig controls the tooling's own logs.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: text | json.
	Format string `yaml:"format"`

	// File, when set, also writes logs to a size-rotated file.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML config data, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if cfg.DefaultUser == "" && len(cfg.Users) > 0 {
		cfg.DefaultUser = cfg.Users[0]
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := defaults()
	cfg.DefaultUser = cfg.Users[0]
	return cfg
}

// HasUser reports whether name is a configured user.
func (c *Config) HasUser(name string) bool {
	return slices.Contains(c.Users, name)
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Year:      DefaultYear,
		Users:     slices.Clone(DefaultUsers),
		InputsDir: DefaultInputsDir,
		Session: SessionConfig{
			CookieEnv:  DefaultCookieEnv,
			CookieFile: DefaultCookieFile,
		},
		Fetch: FetchConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultFetchTimeout,
			Retries:   DefaultFetchRetries,
			UserAgent: DefaultUserAgent,
		},
		Run: RunConfig{
			WarmupRounds:     DefaultWarmupRounds,
			NumRounds:        DefaultNumRounds,
			BuildParallelism: DefaultBuildParallelism,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Year < 2015 {
		return fmt.Errorf("year %d: events start in 2015", cfg.Year)
	}
	if len(cfg.Users) == 0 {
		return fmt.Errorf("users: at least one user is required")
	}
	for i, u := range cfg.Users {
		if !userPattern.MatchString(u) {
			return fmt.Errorf("users[%d] %q: must be letters, digits or underscores", i, u)
		}
	}
	if !cfg.HasUser(cfg.DefaultUser) {
		return fmt.Errorf("default_user %q is not listed in users", cfg.DefaultUser)
	}
	if cfg.InputsDir == "" {
		return fmt.Errorf("inputs_dir is required")
	}
	if cfg.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url is required")
	}
	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if cfg.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}
	if cfg.Run.NumRounds < 1 {
		return fmt.Errorf("run.num_rounds must be at least 1")
	}
	if cfg.Run.WarmupRounds < 0 {
		return fmt.Errorf("run.warmup_rounds must not be negative")
	}
	if cfg.Run.BuildParallelism < 1 {
		return fmt.Errorf("run.build_parallelism must be at least 1")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q unknown: want text|json", cfg.Log.Format)
	}
	return nil
}
