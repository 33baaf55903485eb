package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aocarchive/aoc2021/internal/input"
	"github.com/aocarchive/aoc2021/internal/puzzle"
	"github.com/aocarchive/aoc2021/internal/sonar"
	"github.com/aocarchive/aoc2021/pkg/types"
)

const (
	day  types.Day = 1
	user           = "ahr"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", day.Dir(), err)
		os.Exit(1)
	}
}

// run reads the input once and prints the selected answers to stdout.
// Diagnostics go to stderr and are only emitted when AOC_DEBUG is set.
func run(args []string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if os.Getenv("AOC_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sel := puzzle.SelectorFromArgs(args)
	path := input.Path(day, user)
	logger.Debug("loading input", "day", day, "path", path, "selector", sel)

	seq, err := input.Ints(path)
	if err != nil {
		return err
	}
	logger.Debug("input loaded", "readings", len(seq))

	return puzzle.Run(stdout, sel,
		func() (int, error) { return sonar.Part1(seq), nil },
		func() (int, error) { return sonar.Part2(seq), nil },
	)
}
