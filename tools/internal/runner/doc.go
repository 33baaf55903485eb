// Package runner executes every submitted solution for a day and measures
// how long each part takes.
//
// Discover walks dayNN/<lang>/<user>. Languages the runner has no strategy
// for are logged and skipped; directory names that cannot be a user are
// rejected with ErrInvalidEntry.
//
// Runner.Run makes sure each user's input exists (downloading it when it is
// missing), builds all entries concurrently (bounded by Options.Parallelism),
// then runs the entries one at a time so measurements do not compete for the
// CPU: Warmup untimed rounds, then Rounds timed rounds, each round running
// part 1 then part 2 with AOC_INPUT pointing at the user's input. A sample is
// the child process's user+system CPU time.
//
// Summarize prints the per-language, per-user mean in milliseconds.
// Watch re-triggers a callback when files under the day directory change.
package runner
