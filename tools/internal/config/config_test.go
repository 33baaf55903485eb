package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	cfg := loadFromString(t, `
year: 2022
users: [alice, bob]
default_user: bob
inputs_dir: data/inputs
session:
  cookie_env: MY_COOKIE
  cookie_file: secrets/session.txt
fetch:
  base_url: http://localhost:9999
  timeout: 5s
  retries: 0
run:
  warmup_rounds: 0
  num_rounds: 5
  build_parallelism: 2
  metrics_file: out/aoc.prom
history:
  path: aoc.db
setup:
  editor: vim
log:
  level: debug
  format: json
  file: logs/aoc.log
`)

	assert.Equal(t, 2022, cfg.Year)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Users)
	assert.Equal(t, "bob", cfg.DefaultUser)
	assert.Equal(t, "data/inputs", cfg.InputsDir)
	assert.Equal(t, "MY_COOKIE", cfg.Session.CookieEnv)
	assert.Equal(t, "secrets/session.txt", cfg.Session.CookieFile)
	assert.Equal(t, "http://localhost:9999", cfg.Fetch.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Zero(t, cfg.Fetch.Retries)
	assert.Equal(t, RunConfig{WarmupRounds: 0, NumRounds: 5, BuildParallelism: 2, MetricsFile: "out/aoc.prom"}, cfg.Run)
	assert.Equal(t, "aoc.db", cfg.History.Path)
	assert.Equal(t, "vim", cfg.Setup.Editor)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Log.MaxSizeMB, "unset nested fields keep defaults")
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "year: 2021\n")

	assert.Equal(t, DefaultUsers, cfg.Users)
	assert.Equal(t, "ahr", cfg.DefaultUser)
	assert.Equal(t, DefaultInputsDir, cfg.InputsDir)
	assert.Equal(t, DefaultCookieEnv, cfg.Session.CookieEnv)
	assert.Equal(t, DefaultCookieFile, cfg.Session.CookieFile)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultNumRounds, cfg.Run.NumRounds)
	assert.Equal(t, DefaultWarmupRounds, cfg.Run.WarmupRounds)
	assert.Equal(t, DefaultBuildParallelism, cfg.Run.BuildParallelism)
	assert.Empty(t, cfg.History.Path)
}

func TestLoad_DefaultUserFollowsUsers(t *testing.T) {
	cfg := loadFromString(t, "users: [carol]\n")
	assert.Equal(t, "carol", cfg.DefaultUser)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"old year":             "year: 2014\n",
		"no users":             "users: []\n",
		"bad user name":        "users: [\"a b\"]\n",
		"unknown default user": "default_user: zed\n",
		"zero rounds":          "run:\n  num_rounds: 0\n",
		"negative warmup":      "run:\n  warmup_rounds: -1\n",
		"zero parallelism":     "run:\n  build_parallelism: 0\n",
		"zero timeout":         "fetch:\n  timeout: 0s\n",
		"negative retries":     "fetch:\n  retries: -1\n",
		"unknown log level":    "log:\n  level: loud\n",
		"unknown log format":   "log:\n  format: xml\n",
		"not yaml":             "year: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadStringErr(t, doc)
			assert.Error(t, err)
		})
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "aoc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptional_InvalidFileStillFails(t *testing.T) {
	path := writeConfig(t, "year: 1999\n")
	_, err := LoadOptional(path)
	assert.Error(t, err)
}

func TestSessionConfig_Cookie(t *testing.T) {
	t.Setenv("TEST_AOC_COOKIE", "abc123")
	assert.Equal(t, "abc123", SessionConfig{CookieEnv: "TEST_AOC_COOKIE"}.Cookie())
	assert.Empty(t, SessionConfig{}.Cookie())
}

// --- helpers ----------------------------------------------------------------

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	return cfg
}

func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	return Load(writeConfig(t, content))
}
