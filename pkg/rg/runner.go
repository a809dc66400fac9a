package rg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes one serialized command line. The default implementation
// goes through the platform shell; tests inject their own to exercise the
// builder without a ripgrep binary.
type Runner interface {
	Run(ctx context.Context, commandLine string) (RunResult, error)
}

// RunResult is what one process invocation produced. Stdout and stderr are
// captured separately so callers can tell "no matches" (exit 1, empty
// stdout) from a search error (exit 2, stderr text).
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// shellRunner executes the command line with sh -c, matching how the
// quoted pattern and string arguments in the token sequence are meant to
// be tokenized.
type shellRunner struct{}

func (shellRunner) Run(ctx context.Context, commandLine string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", commandLine)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
