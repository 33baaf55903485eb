package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/tools/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>",
		Short: "Print the results stored in a metrics file written by run --metrics-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			defer f.Close()

			rows, err := report.Read(f)
			if err != nil {
				return err
			}
			return report.Print(cmd.OutOrStdout(), rows)
		},
	}
}
