package gifify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// ErrToolNotFound means the media tool could not be located or launched.
var ErrToolNotFound = errors.New("ffmpeg not installed")

// ToolError reports that the media tool ran but exited unsuccessfully.
type ToolError struct {
	Code int
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d", e.Code)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes the media tool and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) error
}

// ExecRunner runs the tool as a child process. Nil streams inherit the
// current process's stdio.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts binary with args in the current working directory.
func (r ExecRunner) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Code: exitErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("run %s: %w", binary, err)
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
