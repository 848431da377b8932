package utils

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/calcx/internal/config"
)

var testIdentity = config.Identity{Name: "Ada", Lastname: "Lovelace", ID: "42"}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"task1.txt", "task1"},
		{filepath.Join("in", "task1.txt"), "task1"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".hidden", ""},
		{filepath.Join("dir", "inputs") + string(filepath.Separator), "inputs"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputFileName(t *testing.T) {
	got := OutputFileName(filepath.Join("tasks", "task1.txt"), testIdentity)
	if want := "task1_Ada_Lovelace_42.txt"; got != want {
		t.Errorf("OutputFileName = %q, want %q", got, want)
	}
}

func TestDefaultOutputDir(t *testing.T) {
	got := DefaultOutputDir("task1.txt", "bob", testIdentity)
	if want := "task1_bob_42"; got != want {
		t.Errorf("DefaultOutputDir = %q, want %q", got, want)
	}
}

func TestCurrentUser(t *testing.T) {
	t.Setenv(config.UserEnvVar, "carol")
	if got := CurrentUser(); got != "carol" {
		t.Errorf("CurrentUser() = %q, want carol", got)
	}

	t.Setenv(config.UserEnvVar, "")
	if got := CurrentUser(); got != config.DefaultUser {
		t.Errorf("CurrentUser() = %q, want %q", got, config.DefaultUser)
	}
}
