package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Monkeyanator/gifify/pkg/gifify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, dependencies{}))
}

func run(args []string, stdout, stderr io.Writer, deps dependencies) int {
	cmd := newRootCommand(stdout, stderr, deps)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return reportError(stdout, err)
	}
	return 0
}

// reportError prints err the way users expect and picks the exit status.
// A failing ffmpeg has already explained itself on stderr, so only its
// status is passed through.
func reportError(w io.Writer, err error) int {
	var toolErr *gifify.ToolError
	if errors.As(err, &toolErr) {
		if toolErr.Code > 0 {
			return toolErr.Code
		}
		return 1
	}
	if errors.Is(err, gifify.ErrToolNotFound) {
		fmt.Fprintln(w, "ERROR: ffmpeg not installed")
		return 1
	}
	fmt.Fprintf(w, "ERROR: %v\n", err)
	return 1
}
