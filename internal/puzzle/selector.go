package puzzle

import (
	"fmt"
	"io"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// Selector chooses which parts a solution binary runs.
type Selector int

const (
	// All runs part 1 then part 2. Any argument other than "1" or "2",
	// and no argument at all, selects All.
	All Selector = iota
	PartOne
	PartTwo
)

// ParseSelector decodes the positional argument.
func ParseSelector(arg string) Selector {
	switch arg {
	case types.PartOne.Arg():
		return PartOne
	case types.PartTwo.Arg():
		return PartTwo
	default:
		return All
	}
}

// SelectorFromArgs decodes the first positional argument, if any. A leading
// "--" separator (as passed by "go run . -- 1" or "node index.js -- 1") is
// skipped.
func SelectorFromArgs(args []string) Selector {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return All
	}
	return ParseSelector(args[0])
}

// Parts returns the parts to run, in order.
func (s Selector) Parts() []types.Part {
	switch s {
	case PartOne:
		return []types.Part{types.PartOne}
	case PartTwo:
		return []types.Part{types.PartTwo}
	default:
		return types.Parts
	}
}

func (s Selector) String() string {
	switch s {
	case PartOne:
		return "part1"
	case PartTwo:
		return "part2"
	default:
		return "all"
	}
}

// Part computes one answer.
type Part func() (int, error)

// Run computes the selected parts and writes each as a label line followed
// by the answer. It stops at the first part that fails.
func Run(w io.Writer, sel Selector, part1, part2 Part) error {
	for _, p := range sel.Parts() {
		fn := part1
		if p == types.PartTwo {
			fn = part2
		}
		answer, err := fn()
		if err != nil {
			return fmt.Errorf("%s: %w", p.Label(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n%d\n", p.Label(), answer); err != nil {
			return fmt.Errorf("%s: write: %w", p.Label(), err)
		}
	}
	return nil
}
