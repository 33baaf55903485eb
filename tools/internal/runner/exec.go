package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// stderrTail bounds how much of a failing command's stderr is kept.
const stderrTail = 512

// Cmd is one subprocess invocation.
type Cmd struct {
	Dir  string
	Name string
	Args []string
	Env  []string // appended to the parent environment
}

func (c Cmd) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Executor runs a command to completion and reports the CPU time it used.
type Executor interface {
	Run(ctx context.Context, c Cmd) (time.Duration, error)
}

// OSExecutor runs commands as child processes. Stdout is discarded; the tail
// of stderr is attached to the error when the command fails.
type OSExecutor struct{}

func (OSExecutor) Run(ctx context.Context, c Cmd) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > stderrTail {
			msg = "..." + msg[len(msg)-stderrTail:]
		}
		if msg != "" {
			return 0, fmt.Errorf("%s: %w: %s", c, err, msg)
		}
		return 0, fmt.Errorf("%s: %w", c, err)
	}
	ps := cmd.ProcessState
	return ps.UserTime() + ps.SystemTime(), nil
}
