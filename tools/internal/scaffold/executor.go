package scaffold

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Executor runs one external command in dir.
type Executor interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecExecutor runs commands with os/exec. Output goes to Stdout/Stderr when
// set and is discarded otherwise.
type ExecExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (e ExecExecutor) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
