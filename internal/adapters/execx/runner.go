// Package execx implements the command-runner port with os/exec.
package execx

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/xvierd/glint/internal/ports"
	"go.uber.org/zap"
)

// Runner spawns external commands and captures their stdout. Stderr is
// discarded: a prompt fragment must never leak tool chatter.
type Runner struct {
	log *zap.SugaredLogger
}

// New creates a runner. A nil logger disables command tracing.
func New(log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{log: log}
}

// Ensure Runner implements ports.CommandRunner.
var _ ports.CommandRunner = (*Runner)(nil)

// Run executes the program and blocks until it exits. The error is non-nil
// only for spawn failures; a nonzero exit is a normal result.
func (r *Runner) Run(program string, args ...string) (ports.ExecResult, error) {
	r.log.Debugw("running command", "program", program, "args", args)

	cmd := exec.Command(program, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r.log.Debugw("command spawn failed", "program", program, "error", err)
			return ports.ExecResult{}, err
		}
	}

	res := ports.ExecResult{
		Stdout:   stdout.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	r.log.Debugw("command finished", "program", program, "exit_code", res.ExitCode)
	return res, nil
}
