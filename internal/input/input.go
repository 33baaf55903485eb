package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// EnvPath names the environment variable that overrides the input location.
const EnvPath = "AOC_INPUT"

// DefaultDir is where inputs live relative to the working directory.
const DefaultDir = "inputs"

// ErrMalformed is matched by every *ParseError.
var ErrMalformed = errors.New("malformed input line")

// ParseError reports a line that is neither blank nor an integer.
type ParseError struct {
	Line int    // 1-based
	Text string // the offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not an integer: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

// Path returns the input file for day and user: $AOC_INPUT when set,
// otherwise inputs/<user>/dayNN.txt under the working directory or the
// nearest parent that has it, which is where the aoc tool downloads inputs.
// When no such file exists the relative path is returned, so the open error
// names it.
func Path(day types.Day, user string) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	rel := filepath.Join(DefaultDir, user, day.InputFile())
	dir, err := os.Getwd()
	if err != nil {
		return rel
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return rel
		}
		dir = parent
	}
}

// Ints reads every integer in the file at path, in file order.
func Ints(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open: %w", err)
	}
	defer f.Close()

	seq, err := ParseInts(f)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}
	return seq, nil
}

// ParseInts reads every integer from r, in order.
func ParseInts(r io.Reader) ([]int, error) {
	var seq []int
	err := Scan(r, func(v int) error {
		seq = append(seq, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// Scan calls fn for each integer in r without buffering the whole sequence.
// It stops at the first malformed line, read error, or error from fn.
func Scan(r io.Reader, fn func(int) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return &ParseError{Line: line, Text: text, Err: unwrapNum(err)}
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

// unwrapNum strips strconv's own "parsing ...: " prefix, which would repeat
// the text already carried by ParseError.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
