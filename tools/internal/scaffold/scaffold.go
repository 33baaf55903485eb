package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// ErrExists is returned when the target directory is already there.
var ErrExists = errors.New("scaffold: already started")

// Scaffolder creates solution directories below Root.
type Scaffolder struct {
	Root string
	Exec Executor

	// Editor, when set, is launched with the new directory as argument.
	Editor string
}

// Dir returns the directory a solution for day/lang/user lives in.
func Dir(root string, day types.Day, lang types.Language, user string) string {
	return filepath.Join(root, day.Dir(), string(lang), user)
}

// Create builds dayNN/<lang>/<user> and returns its path. On failure after
// the directory was made, the partial directory is removed so Create can be
// retried.
func (s *Scaffolder) Create(ctx context.Context, day types.Day, lang types.Language, user string) (string, error) {
	if !day.Valid() {
		return "", fmt.Errorf("scaffold: invalid day %d", day)
	}
	r, err := recipeFor(lang, day)
	if err != nil {
		return "", err
	}

	dir := Dir(s.Root, day, lang, user)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("scaffold: %w", err)
	}

	if err := r.apply(ctx, s.Exec, dir, day, user); err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.Warn("scaffold: could not remove partial directory", "dir", dir, "err", rmErr)
		}
		return "", err
	}
	slog.Info("scaffold: created", "day", day, "lang", lang, "user", user, "dir", dir)

	if s.Editor != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = dir
		}
		if err := s.Exec.Run(ctx, s.Root, s.Editor, abs); err != nil {
			slog.Warn("scaffold: editor failed to start", "editor", s.Editor, "err", err)
		}
	}
	return dir, nil
}
