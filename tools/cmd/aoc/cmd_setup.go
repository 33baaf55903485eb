package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/scaffold"
)

func newSetupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <day> <lang> [user]",
		Short: "Create dayNN/<lang>/<user> with a starter solution",
		Long: `Create the solution directory for one user, language and day, run the
language's init commands (go mod init, npm init, cargo init, a Python venv)
and write a starter program that prints both parts.

Languages: go, py, js, ts, rs (or golang, python, javascript, typescript, rust).`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := types.ParseDay(args[0])
			if err != nil {
				return err
			}
			lang, err := types.ParseLanguage(args[1])
			if err != nil {
				return err
			}
			var name string
			if len(args) == 3 {
				name = args[2]
			}
			user, err := a.user(name)
			if err != nil {
				return err
			}

			s := &scaffold.Scaffolder{Root: a.root, Exec: a.setupExec, Editor: a.cfg.Setup.Editor}
			dir, err := s.Create(cmd.Context(), day, lang, user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
