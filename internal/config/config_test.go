package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	data := []byte(`
interpreter:
  codel_size: 8
  max_steps: 500
  missing_color: black
trace:
  enabled: true
  level: debug
storage:
  db: /tmp/runs.db
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Interpreter.CodelSize != 8 {
		t.Errorf("expected codel_size 8, got %d", cfg.Interpreter.CodelSize)
	}
	if cfg.Interpreter.MaxSteps != 500 {
		t.Errorf("expected max_steps 500, got %d", cfg.Interpreter.MaxSteps)
	}
	if !cfg.Interpreter.MissingBlack() {
		t.Error("expected missing_color black")
	}
	if !cfg.Trace.Enabled || cfg.Trace.Level != "debug" {
		t.Errorf("unexpected trace config: %+v", cfg.Trace)
	}
	if cfg.Storage.DB != "/tmp/runs.db" {
		t.Errorf("unexpected storage db: %q", cfg.Storage.DB)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/pietvm.yaml"); err == nil {
		t.Error("missing explicit config should fail")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("interpreter: [not a map"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unparsable explicit config should fail")
	}
}

func TestLoadFallsBackToEmbeddedDefault(t *testing.T) {
	// Point HOME at an empty directory and run from one too, so neither
	// the user nor the working-directory config exists.
	t.Setenv("HOME", t.TempDir())
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting cwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing dir: %v", err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// The embedded default matches the hardcoded fallback.
	want := Default()
	if cfg.Interpreter.MissingColor != want.Interpreter.MissingColor {
		t.Errorf("expected missing_color %q, got %q", want.Interpreter.MissingColor, cfg.Interpreter.MissingColor)
	}
	if cfg.Storage.DB != want.Storage.DB {
		t.Errorf("expected db %q, got %q", want.Storage.DB, cfg.Storage.DB)
	}
}

func TestMissingBlack(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"black", true},
		{"white", false},
		{"", false},
		{"BLACK", false},
	}
	for _, tc := range testCases {
		c := InterpreterConfig{MissingColor: tc.value}
		if c.MissingBlack() != tc.want {
			t.Errorf("MissingBlack(%q): expected %v", tc.value, tc.want)
		}
	}
}
