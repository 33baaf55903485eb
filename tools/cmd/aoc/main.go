// Command aoc scaffolds, fetches inputs for, and times the solutions in this
// archive.
//
//	aoc setup 3 rust          # start day03/rs/<default user>
//	aoc fetch 3 ukr           # download inputs/ukr/day03.txt
//	aoc run -n 10             # time every solution of the latest day
//	aoc run 1 --watch         # re-run day01 whenever a source changes
//	aoc history 1             # past runs and best times for day01
//	aoc report aoc.prom       # print a metrics file written by run
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(newApp()).ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		os.Exit(1)
	}
}
