package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) failed: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(old)
		ResetForTesting()
	})
}

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if got := TrunkBranch(); got != "main" {
		t.Errorf("TrunkBranch() = %q, want main", got)
	}
	if got := BranchPrefix(); got != "feature/" {
		t.Errorf("BranchPrefix() = %q, want feature/", got)
	}
	if got := Remote(); got != "origin" {
		t.Errorf("Remote() = %q, want origin", got)
	}
	if got := TasksDir(); got != "tasks" {
		t.Errorf("TasksDir() = %q, want tasks", got)
	}
	if got := TaskExtension(); got != ".md" {
		t.Errorf("TaskExtension() = %q, want .md", got)
	}
}

func TestProjectConfigFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, ".mdtasks"), 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	yaml := "git:\n  trunk: trunk\n  branch-prefix: \"task/\"\ntasks:\n  dir: todo\n"
	if err := os.WriteFile(filepath.Join(tmp, ".mdtasks", "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	chdir(t, tmp)

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if got := TrunkBranch(); got != "trunk" {
		t.Errorf("TrunkBranch() = %q, want trunk", got)
	}
	if got := BranchPrefix(); got != "task/" {
		t.Errorf("BranchPrefix() = %q, want task/", got)
	}
	if got := TasksDir(); got != "todo" {
		t.Errorf("TasksDir() = %q, want todo", got)
	}
	// Keys absent from the file keep their defaults.
	if got := Remote(); got != "origin" {
		t.Errorf("Remote() = %q, want origin", got)
	}
}

func TestConfigFoundFromSubdirectory(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, ".mdtasks"), 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	yaml := "tasks:\n  dir: elsewhere\n"
	if err := os.WriteFile(filepath.Join(tmp, ".mdtasks", "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	sub := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(sub, 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	chdir(t, sub)

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if got := TasksDir(); got != "elsewhere" {
		t.Errorf("TasksDir() = %q, want elsewhere", got)
	}
}

func TestEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MDTASKS_GIT_TRUNK", "develop")

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if got := TrunkBranch(); got != "develop" {
		t.Errorf("TrunkBranch() = %q, want develop", got)
	}
}
