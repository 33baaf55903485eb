package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/history"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [day]",
		Short: "List recorded runs and, for a day, the best times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.History.Path == "" {
				return errors.New("history is disabled; set history.path in the config")
			}
			var day types.Day
			if len(args) == 1 {
				d, err := types.ParseDay(args[0])
				if err != nil {
					return err
				}
				day = d
			}

			store, err := history.Open(cmd.Context(), a.path(a.cfg.History.Path))
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			runs, err := store.Runs(cmd.Context(), day, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs recorded")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  day %2d  %s  entries=%d rounds=%d elapsed=%s\n",
					r.ID[:8], r.Day, r.StartedAt.Local().Format(time.DateTime),
					r.Entries, r.NumRounds, r.Elapsed.Round(time.Millisecond))
			}

			if day == 0 {
				return nil
			}
			best, err := store.Best(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nBest for day %d\n", day)
			for _, b := range best {
				fmt.Fprintf(out, "  %-10s %-8s %s  %sms  (%s)\n",
					b.Language.Name(), b.User, b.Part.Label(), runner.Millis(b.Mean), b.At.Local().Format(time.DateOnly))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to list; 0 lists all")
	return cmd
}
