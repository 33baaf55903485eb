package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Day bounds for a single event.
const (
	FirstDay Day = 1
	LastDay  Day = 25
)

// Day is a puzzle day within one event, 1 through 25.
type Day int

// ParseDay parses a decimal day number and checks it is in range.
func ParseDay(s string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("day %q: not a number", s)
	}
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("day %d: out of range [%d, %d]", n, FirstDay, LastDay)
	}
	return d, nil
}

// Valid reports whether d is a real puzzle day.
func (d Day) Valid() bool { return d >= FirstDay && d <= LastDay }

// Dir returns the zero-padded directory name, e.g. "day01".
func (d Day) Dir() string { return fmt.Sprintf("day%02d", int(d)) }

// InputFile returns the conventional input file name, e.g. "day01.txt".
func (d Day) InputFile() string { return d.Dir() + ".txt" }

func (d Day) String() string { return strconv.Itoa(int(d)) }

// Language is the short suffix used for a solution's directory name.
type Language string

// Supported solution languages.
const (
	Go         Language = "go"
	Python     Language = "py"
	JavaScript Language = "js"
	TypeScript Language = "ts"
	Rust       Language = "rs"
)

// Languages lists every supported language in summary order.
var Languages = []Language{Go, JavaScript, Python, Rust, TypeScript}

var longNames = map[string]Language{
	"go":         Go,
	"golang":     Go,
	"python":     Python,
	"javascript": JavaScript,
	"typescript": TypeScript,
	"rust":       Rust,
}

// ParseLanguage accepts either the short suffix ("rs") or the long name
// ("rust"), case-insensitively.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l, ok := longNames[s]; ok {
		return l, nil
	}
	l := Language(s)
	if l.Known() {
		return l, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Known reports whether l is one of Languages.
func (l Language) Known() bool {
	for _, k := range Languages {
		if l == k {
			return true
		}
	}
	return false
}

// Name returns the human-readable language name used in summaries.
func (l Language) Name() string {
	switch l {
	case Go:
		return "Go"
	case Python:
		return "Python"
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	case Rust:
		return "Rust"
	default:
		return string(l)
	}
}

// Part is one of the two sub-problems of a daily puzzle.
type Part int

// The two parts of every puzzle.
const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in execution order.
var Parts = []Part{PartOne, PartTwo}

// Arg is the command-line selector that asks a solution for this part.
func (p Part) Arg() string { return strconv.Itoa(int(p)) }

// Label is the header a solution prints before the part's answer.
func (p Part) Label() string { return "Part " + p.Arg() }
