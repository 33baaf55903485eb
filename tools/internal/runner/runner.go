package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// InputSource makes sure a user's input for a day is on disk and returns
// its path.
type InputSource interface {
	Ensure(ctx context.Context, day types.Day, user string) (string, error)
}

// Options control one run. Out-of-range values are clamped: at least one
// timed round, no negative warmups, at least one build at a time.
type Options struct {
	WarmupRounds int
	NumRounds    int
	Parallelism  int
}

func (o Options) clamped() Options {
	o.NumRounds = max(o.NumRounds, 1)
	o.WarmupRounds = max(o.WarmupRounds, 0)
	o.Parallelism = max(o.Parallelism, 1)
	return o
}

// Sample is the CPU time of one round.
type Sample struct {
	Part1 time.Duration
	Part2 time.Duration
}

// Part returns the duration recorded for p.
func (s Sample) Part(p types.Part) time.Duration {
	if p == types.PartTwo {
		return s.Part2
	}
	return s.Part1
}

// Result holds every timed sample of one entry.
type Result struct {
	Entry   Entry
	Samples []Sample
}

// Mean returns the per-part mean, truncated to whole nanoseconds.
func (r Result) Mean() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	var p1, p2 time.Duration
	for _, s := range r.Samples {
		p1 += s.Part1
		p2 += s.Part2
	}
	n := time.Duration(len(r.Samples))
	return Sample{Part1: p1 / n, Part2: p2 / n}
}

// Report is the outcome of one Runner.Run.
type Report struct {
	Day          types.Day
	StartedAt    time.Time
	Elapsed      time.Duration
	WarmupRounds int
	NumRounds    int
	Languages    []types.Language
	Results      []Result
}

// Runner builds and times the entries of a day.
type Runner struct {
	Root   string
	Inputs InputSource
	Exec   Executor

	now func() time.Time // injectable for deterministic tests
}

// New returns a Runner for the solutions under root.
func New(root string, inputs InputSource, exec Executor) *Runner {
	return &Runner{Root: root, Inputs: inputs, Exec: exec, now: time.Now}
}

// Run discovers, builds and times every entry for day.
func (r *Runner) Run(ctx context.Context, day types.Day, opts Options) (*Report, error) {
	opts = opts.clamped()
	start := r.now()

	layout, err := Discover(r.Root, day)
	if err != nil {
		return nil, err
	}

	inputs := make(map[string]string, len(layout.Users()))
	for _, user := range layout.Users() {
		path, err := r.Inputs.Ensure(ctx, day, user)
		if err != nil {
			return nil, fmt.Errorf("runner: input for %s: %w", user, err)
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		inputs[user] = path
	}

	if err := r.buildAll(ctx, layout.Entries, opts.Parallelism); err != nil {
		return nil, err
	}

	slog.Info("runner: taking samples", "day", day, "entries", len(layout.Entries),
		"warmup_rounds", opts.WarmupRounds, "num_rounds", opts.NumRounds)

	rep := &Report{
		Day:          day,
		StartedAt:    start,
		WarmupRounds: opts.WarmupRounds,
		NumRounds:    opts.NumRounds,
		Languages:    layout.Languages,
	}
	for _, e := range layout.Entries {
		res, err := r.sample(ctx, e, inputs[e.User], opts)
		if err != nil {
			return nil, err
		}
		rep.Results = append(rep.Results, res)
	}
	rep.Elapsed = r.now().Sub(start)
	return rep, nil
}

// buildAll runs every entry's build steps, at most parallelism at a time.
// The first failure cancels the remaining builds.
func (r *Runner) buildAll(ctx context.Context, entries []Entry, parallelism int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, e := range entries {
		g.Go(func() error {
			for _, c := range buildCmds(e) {
				slog.Debug("runner: building", "entry", e.Name(), "cmd", c.String())
				if _, err := r.Exec.Run(gctx, c); err != nil {
					return fmt.Errorf("runner: build %s: %w", e.Name(), err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// sample runs the warmup rounds, then the timed rounds, for one entry.
func (r *Runner) sample(ctx context.Context, e Entry, inputPath string, opts Options) (Result, error) {
	for i := 0; i < opts.WarmupRounds; i++ {
		if _, err := r.round(ctx, e, inputPath); err != nil {
			return Result{}, err
		}
	}

	res := Result{Entry: e, Samples: make([]Sample, 0, opts.NumRounds)}
	for i := 0; i < opts.NumRounds; i++ {
		s, err := r.round(ctx, e, inputPath)
		if err != nil {
			return Result{}, err
		}
		res.Samples = append(res.Samples, s)
	}

	mean := res.Mean()
	slog.Debug("runner: sampled", "entry", e.Name(), "part1", mean.Part1, "part2", mean.Part2)
	return res, nil
}

// round runs part 1 then part 2 once.
func (r *Runner) round(ctx context.Context, e Entry, inputPath string) (Sample, error) {
	var s Sample
	for _, p := range types.Parts {
		d, err := r.Exec.Run(ctx, runCmd(e, p, inputPath))
		if err != nil {
			return Sample{}, fmt.Errorf("runner: %s %s: %w", e.Name(), p.Label(), err)
		}
		if p == types.PartOne {
			s.Part1 = d
		} else {
			s.Part2 = d
		}
	}
	return s, nil
}
