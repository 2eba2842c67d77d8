package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "scripts", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		start, want string
	}{
		{root, root},
		{nested, root},
		{filepath.Join(root, "scripts"), root},
	}
	for _, tt := range tests {
		if got := projectRoot(tt.start); got != tt.want {
			t.Errorf("projectRoot(%s) = %s, want %s", tt.start, got, tt.want)
		}
	}
}

func TestProjectRootIgnoresGoModDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(filepath.Join(sub, "go.mod"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := projectRoot(sub); got != root {
		t.Errorf("projectRoot = %s, want %s", got, root)
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	if err := run(root); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{"icon.png", "icon-512.png", "icon-256.png"} {
		p := filepath.Join(root, "build", name)
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("stat %s: %v", p, err)
		}
	}

	// A second run over an existing build dir succeeds.
	if err := run(root); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestRunBuildIsFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "build"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(root); err == nil {
		t.Fatal("run succeeded, want error")
	}
}
