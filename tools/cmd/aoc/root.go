package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/tools/internal/config"
	"github.com/aocarchive/aoc2021/tools/internal/fetch"
	"github.com/aocarchive/aoc2021/tools/internal/logging"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
	"github.com/aocarchive/aoc2021/tools/internal/scaffold"
)

// app is the state shared by every subcommand. The executors and the
// downloader are fields so tests can replace them.
type app struct {
	configPath string
	root       string
	verbose    bool

	cfg    *config.Config
	closer io.Closer

	setupExec  scaffold.Executor
	runExec    runner.Executor
	downloader fetch.Downloader // nil means the real site
}

func newApp() *app {
	return &app{
		setupExec: scaffold.ExecExecutor{},
		runExec:   runner.OSExecutor{},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Puzzle archive tooling: scaffold, fetch inputs, time solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "aoc.yaml", "config file; relative paths are resolved against --root")
	pf.StringVar(&a.root, "root", ".", "archive root holding the dayNN directories")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newSetupCmd(a),
		newFetchCmd(a),
		newRunCmd(a),
		newHistoryCmd(a),
		newReportCmd(),
	)
	return root
}

// load reads the config and installs the logger.
func (a *app) load(stderr io.Writer) error {
	cfg, err := config.LoadOptional(a.path(a.configPath))
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Log.File = a.path(cfg.Log.File)
	logger, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	slog.Debug("aoc: config loaded", "path", a.configPath, "year", cfg.Year, "users", cfg.Users)

	a.cfg = cfg
	a.closer = closer
	return nil
}

// path resolves p against the archive root unless it is absolute.
func (a *app) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.root, p)
}

// fetcher returns a Fetcher whose session cookie is resolved only if a
// download is actually needed.
func (a *app) fetcher(cookie string) *fetch.Fetcher {
	src := a.downloader
	if src == nil {
		src = fetch.NewLazyClient(a.cfg.Fetch, func() (string, error) {
			return fetch.ResolveSession(cookie, a.cfg.Session, a.root)
		})
	}
	return &fetch.Fetcher{
		Source:    src,
		Year:      a.cfg.Year,
		InputsDir: a.path(a.cfg.InputsDir),
	}
}

// user returns name, or the configured default when name is empty, and
// checks that it is a configured user.
func (a *app) user(name string) (string, error) {
	if name == "" {
		return a.cfg.DefaultUser, nil
	}
	if !a.cfg.HasUser(name) {
		return "", fmt.Errorf("unknown user %q (configured: %s)", name, strings.Join(a.cfg.Users, ", "))
	}
	return name, nil
}
