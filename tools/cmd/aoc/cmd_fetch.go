package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aocarchive/aoc2021/pkg/types"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		cookie string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "fetch <day> [user]",
		Short: "Download a user's puzzle input",
		Long: `Download the puzzle input for day into inputs/<user>/dayNN.txt.

The session cookie is taken from --cookie, then the environment variable
named by session.cookie_env (a .env file in --root is loaded first), then
the file named by session.cookie_file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := types.ParseDay(args[0])
			if err != nil {
				return err
			}
			var name string
			if len(args) == 2 {
				name = args[1]
			}
			user, err := a.user(name)
			if err != nil {
				return err
			}

			path, err := a.fetcher(cookie).Fetch(cmd.Context(), day, user, force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&cookie, "cookie", "", "session cookie, overriding the environment and cookie file")
	cmd.Flags().BoolVar(&force, "force", false, "download again even if the file exists")
	return cmd
}
