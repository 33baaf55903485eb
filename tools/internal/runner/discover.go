package runner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/aocarchive/aoc2021/pkg/types"
)

var (
	// ErrNoDays is returned when Root contains no dayNN directories.
	ErrNoDays = errors.New("no days available to execute")

	// ErrNoAttempts is returned when the requested day has no directory.
	ErrNoAttempts = errors.New("no attempts for day")

	// ErrInvalidEntry is returned for a directory that does not fit the
	// dayNN/<lang>/<user> layout.
	ErrInvalidEntry = errors.New("invalid entry")
)

var (
	dayDirPattern = regexp.MustCompile(`^day(\d{2})$`)
	userPattern   = regexp.MustCompile(`^\w+$`)
)

// Entry is one user's solution in one language.
type Entry struct {
	Day  types.Day
	Lang types.Language
	User string
	Dir  string // absolute
}

// Name identifies the entry in logs and errors, e.g. "go/ahr".
func (e Entry) Name() string { return string(e.Lang) + "/" + e.User }

// Layout is what Discover found for one day.
type Layout struct {
	Day types.Day
	Dir string

	// Languages with a directory for this day, in summary order, including
	// those with no user directories yet.
	Languages []types.Language

	// Entries sorted by language then user.
	Entries []Entry
}

// Users returns the distinct users with at least one entry, sorted.
func (l *Layout) Users() []string {
	var users []string
	for _, e := range l.Entries {
		if !slices.Contains(users, e.User) {
			users = append(users, e.User)
		}
	}
	slices.Sort(users)
	return users
}

// LatestDay returns the highest day that has a directory under root.
func LatestDay(root string) (types.Day, error) {
	des, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("runner: read %s: %w", root, err)
	}
	var latest types.Day
	for _, de := range des {
		m := dayDirPattern.FindStringSubmatch(de.Name())
		if !de.IsDir() || m == nil {
			continue
		}
		d, err := types.ParseDay(m[1])
		if err != nil {
			continue
		}
		if d > latest {
			latest = d
		}
	}
	if latest == 0 {
		return 0, ErrNoDays
	}
	return latest, nil
}

// Discover lists the entries for day under root.
func Discover(root string, day types.Day) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	dayDir := filepath.Join(abs, day.Dir())
	langDirs, err := os.ReadDir(dayDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w %d", ErrNoAttempts, day)
	}
	if err != nil {
		return nil, fmt.Errorf("runner: read %s: %w", dayDir, err)
	}

	layout := &Layout{Day: day, Dir: dayDir}
	for _, ld := range langDirs {
		if hidden(ld.Name()) {
			continue
		}
		if !ld.IsDir() {
			return nil, fmt.Errorf("%w %q: not a directory", ErrInvalidEntry, ld.Name())
		}
		lang := types.Language(ld.Name())
		if !lang.Known() {
			slog.Warn("runner: unknown language, skipping", "day", day, "lang", ld.Name())
			continue
		}
		layout.Languages = append(layout.Languages, lang)

		userDirs, err := os.ReadDir(filepath.Join(dayDir, ld.Name()))
		if err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
		for _, ud := range userDirs {
			if hidden(ud.Name()) {
				continue
			}
			if !ud.IsDir() || !userPattern.MatchString(ud.Name()) {
				return nil, fmt.Errorf("%w %q", ErrInvalidEntry, filepath.Join(ld.Name(), ud.Name()))
			}
			layout.Entries = append(layout.Entries, Entry{
				Day:  day,
				Lang: lang,
				User: ud.Name(),
				Dir:  filepath.Join(dayDir, ld.Name(), ud.Name()),
			})
		}
	}

	slices.SortFunc(layout.Languages, func(a, b types.Language) int {
		return strings.Compare(a.Name(), b.Name())
	})
	slices.SortFunc(layout.Entries, func(a, b Entry) int {
		if c := strings.Compare(a.Lang.Name(), b.Lang.Name()); c != 0 {
			return c
		}
		return strings.Compare(a.User, b.User)
	})
	return layout, nil
}

func hidden(name string) bool { return strings.HasPrefix(name, ".") }
