package gifify

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestExecRunnerPassesArgumentsVerbatim(t *testing.T) {
	stub := writeScript(t, `for a in "$@"; do printf '%s\n' "$a"; done`)
	var stdout bytes.Buffer
	r := ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	args := []string{"-vf", "subtitles='my subs.srt'", "-i", "my clip.mp4", "out.gif"}
	if err := r.Run(context.Background(), stub, args); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(got) != len(args) {
		t.Fatalf("expected %d args, got %q", len(args), got)
	}
	for i := range args {
		if got[i] != args[i] {
			t.Fatalf("arg %d: got %q want %q", i, got[i], args[i])
		}
	}
}

func TestExecRunnerReportsExitCode(t *testing.T) {
	stub := writeScript(t, "exit 3")
	r := ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), stub, nil)
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.Code != 3 {
		t.Fatalf("expected exit code 3, got %d", toolErr.Code)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	r := ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), "clearly-not-present-ffmpeg", []string{"-version"})
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}

	err = r.Run(context.Background(), filepath.Join(t.TempDir(), "ffmpeg"), nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound for absolute path, got %v", err)
	}
}
