package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// Fetcher stores downloaded inputs under InputsDir/<user>/dayNN.txt.
type Fetcher struct {
	Source    Downloader
	Year      int
	InputsDir string
}

// Path returns where the input for day and user is stored.
func (f *Fetcher) Path(day types.Day, user string) string {
	return filepath.Join(f.InputsDir, user, day.InputFile())
}

// Fetch downloads the input for day and user unless it is already present.
// With force set, an existing file is replaced. It returns the file path.
func (f *Fetcher) Fetch(ctx context.Context, day types.Day, user string, force bool) (string, error) {
	path := f.Path(day, user)
	if !force {
		if _, err := os.Stat(path); err == nil {
			slog.Debug("fetch: input already present", "day", day, "user", user, "path", path)
			return path, nil
		}
	}

	body, err := f.Source.Input(ctx, f.Year, day)
	if err != nil {
		return "", err
	}
	if err := writeAtomic(path, body); err != nil {
		return "", fmt.Errorf("fetch: store day %d input: %w", day, err)
	}

	slog.Info("fetch: input stored", "day", day, "user", user, "path", path, "bytes", len(body))
	return path, nil
}

// Ensure is Fetch without force; it satisfies the runner's input source.
func (f *Fetcher) Ensure(ctx context.Context, day types.Day, user string) (string, error) {
	return f.Fetch(ctx, day, user, false)
}

// writeAtomic writes data to a temp file beside path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
