package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Monkeyanator/gifify/pkg/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("unexpected binary %q", cfg.FFmpeg.Binary)
	}
	if !cfg.FFmpeg.Probe {
		t.Fatal("expected probing enabled by default")
	}
	if cfg.FFmpeg.Overwrite {
		t.Fatal("expected overwrite disabled by default")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "auto" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gifify.toml")
	content := `
[ffmpeg]
binary = " /usr/local/bin/ffmpeg "
overwrite = true
probe = false

[logging]
level = "DEBUG"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to be loaded, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.FFmpeg.Binary != "/usr/local/bin/ffmpeg" {
		t.Fatalf("unexpected binary %q", cfg.FFmpeg.Binary)
	}
	if !cfg.FFmpeg.Overwrite || cfg.FFmpeg.Probe {
		t.Fatalf("unexpected ffmpeg section: %+v", cfg.FFmpeg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
}

func TestLoadProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "gifify.toml"), []byte("[ffmpeg]\nbinary = \"avconv\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.FFmpeg.Binary != "avconv" {
		t.Fatalf("unexpected binary %q", cfg.FFmpeg.Binary)
	}
	if !cfg.FFmpeg.Probe {
		t.Fatal("expected unset probe to keep its default")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad level":     "[logging]\nlevel = \"loud\"\n",
		"bad format":    "[logging]\nformat = \"xml\"\n",
		"unknown field": "[ffmpeg]\nthreads = 4\n",
		"bad toml":      "[ffmpeg\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
