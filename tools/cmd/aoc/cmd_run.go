package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/history"
	"github.com/aocarchive/aoc2021/tools/internal/report"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		warmup, rounds, parallel int
		watch                    bool
		metricsOut               string
		cookie                   string
	)
	cmd := &cobra.Command{
		Use:   "run [day]",
		Short: "Build and time every solution of a day",
		Long: `Build every solution of day (default: the latest day with a directory),
then run each part of each solution and print the mean CPU time per user,
grouped by language.

Missing inputs are downloaded first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				day types.Day
				err error
			)
			if len(args) == 1 {
				day, err = types.ParseDay(args[0])
			} else {
				day, err = runner.LatestDay(a.root)
			}
			if err != nil {
				return err
			}

			opts := runner.Options{
				WarmupRounds: a.cfg.Run.WarmupRounds,
				NumRounds:    a.cfg.Run.NumRounds,
				Parallelism:  a.cfg.Run.BuildParallelism,
			}
			f := cmd.Flags()
			if f.Changed("warmup") {
				opts.WarmupRounds = warmup
			}
			if f.Changed("rounds") {
				opts.NumRounds = rounds
			}
			if f.Changed("parallel") {
				opts.Parallelism = parallel
			}
			if metricsOut == "" {
				metricsOut = a.path(a.cfg.Run.MetricsFile)
			}

			r := runner.New(a.root, a.fetcher(cookie), a.runExec)
			once := func(ctx context.Context) error {
				return a.runOnce(ctx, cmd.OutOrStdout(), r, day, opts, metricsOut)
			}

			if err := once(cmd.Context()); err != nil {
				if !watch {
					return err
				}
				slog.Error("aoc: run failed", "err", err)
			}
			if !watch {
				return nil
			}
			return runner.Watch(cmd.Context(), filepath.Join(a.root, day.Dir()), 0, once)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&warmup, "warmup", "w", 0, "untimed rounds before measuring (default from run.warmup_rounds)")
	f.IntVarP(&rounds, "rounds", "n", 0, "timed rounds to average (default from run.num_rounds)")
	f.IntVarP(&parallel, "parallel", "j", 0, "entries built at once (default from run.build_parallelism)")
	f.BoolVar(&watch, "watch", false, "re-run whenever a source under the day directory changes")
	f.StringVar(&metricsOut, "metrics-out", "", "also write a Prometheus textfile of the results")
	f.StringVar(&cookie, "cookie", "", "session cookie for downloading missing inputs")
	return cmd
}

// runOnce runs day, prints the summary and stores the results wherever the
// config asks for them.
func (a *app) runOnce(ctx context.Context, out io.Writer, r *runner.Runner, day types.Day, opts runner.Options, metricsOut string) error {
	rep, err := r.Run(ctx, day, opts)
	if err != nil {
		return err
	}
	if err := runner.Summarize(out, rep); err != nil {
		return err
	}

	if metricsOut != "" {
		if err := report.Write(metricsOut, rep); err != nil {
			return err
		}
		slog.Info("aoc: metrics written", "path", metricsOut)
	}

	if a.cfg.History.Path != "" {
		store, err := history.Open(ctx, a.path(a.cfg.History.Path))
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Record(ctx, rep)
		if err != nil {
			return fmt.Errorf("aoc: record run: %w", err)
		}
		slog.Debug("aoc: run recorded", "id", id)
	}
	return nil
}
