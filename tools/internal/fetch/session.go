package fetch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aocarchive/aoc2021/tools/internal/config"
)

// ErrNoSession is returned when no session cookie can be found.
var ErrNoSession = errors.New("fetch: no session cookie")

// ResolveSession returns the session cookie. explicit wins when non-empty;
// otherwise the environment variable named by cfg.CookieEnv is read (a .env
// file in root is loaded first, without overriding the real environment);
// otherwise the file cfg.CookieFile, relative to root, is read.
func ResolveSession(explicit string, cfg config.SessionConfig, root string) (string, error) {
	if s := strings.TrimSpace(explicit); s != "" {
		return s, nil
	}

	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("fetch: load .env: %w", err)
	}
	if s := strings.TrimSpace(cfg.Cookie()); s != "" {
		return s, nil
	}

	if cfg.CookieFile != "" {
		path := cfg.CookieFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if s := strings.Trim(string(data), "\r\n"); s != "" {
				return s, nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("fetch: read cookie file: %w", err)
		}
	}

	return "", fmt.Errorf("%w: pass --cookie, set %s, or write it to %s",
		ErrNoSession, cfg.CookieEnv, cfg.CookieFile)
}
