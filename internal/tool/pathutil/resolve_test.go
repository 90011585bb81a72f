package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAbs(t *testing.T) {
	workspaceRoot := "/workspace"
	resolver := NewResolver(workspaceRoot)

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "relative path within workspace",
			input:    "src/main.go",
			expected: "/workspace/src/main.go",
			err:      nil,
		},
		{
			name:     "absolute path within workspace",
			input:    "/workspace/src/main.go",
			expected: "/workspace/src/main.go",
			err:      nil,
		},
		{
			name:     "path with dots within workspace",
			input:    "src/../src/main.go",
			expected: "/workspace/src/main.go",
			err:      nil,
		},
		{
			name:     "workspace root",
			input:    ".",
			expected: "/workspace",
			err:      nil,
		},
		{
			name:     "absolute workspace root",
			input:    "/workspace",
			expected: "/workspace",
			err:      nil,
		},
		{
			name:     "escape attempt via parent dots",
			input:    "../../../etc/passwd",
			expected: "",
			err:      ErrOutsideWorkspace,
		},
		{
			name:     "absolute path outside workspace",
			input:    "/etc/passwd",
			expected: "",
			err:      ErrOutsideWorkspace,
		},
		{
			name:     "prefix match but not child",
			input:    "/workspacefoo/bar",
			expected: "",
			err:      ErrOutsideWorkspace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abs, err := resolver.Abs(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if abs != tt.expected {
				t.Errorf("expected abs %q, got %q", tt.expected, abs)
			}
		})
	}
}

func TestAbs_EmptyRoot(t *testing.T) {
	resolver := NewResolver("")

	_, err := resolver.Abs("src/main.go")
	if !errors.Is(err, ErrWorkspaceRootNotSet) {
		t.Fatalf("expected ErrWorkspaceRootNotSet, got %v", err)
	}
}

func TestRel(t *testing.T) {
	resolver := NewResolver("/workspace")

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "relative path stays relative",
			input:    "src/main.go",
			expected: "src/main.go",
			err:      nil,
		},
		{
			name:     "absolute path becomes relative",
			input:    "/workspace/src/main.go",
			expected: "src/main.go",
			err:      nil,
		},
		{
			name:     "workspace root becomes empty",
			input:    ".",
			expected: "",
			err:      nil,
		},
		{
			name:     "escape attempt rejected",
			input:    "../outside",
			expected: "",
			err:      ErrOutsideWorkspace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := resolver.Rel(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if rel != tt.expected {
				t.Errorf("expected rel %q, got %q", tt.expected, rel)
			}
		})
	}
}

func TestCanonicaliseRoot(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()

		resolved, err := CanonicaliseRoot(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Canonical path must stat as a directory.
		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			t.Errorf("expected %q to be an existing directory", resolved)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(t.TempDir(), "does-not-exist"))
		if err == nil {
			t.Fatal("expected error for missing directory")
		}

		var rootErr *WorkspaceRootError
		if !errors.As(err, &rootErr) {
			t.Errorf("expected WorkspaceRootError, got %T", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := CanonicaliseRoot(file)
		if !errors.Is(err, ErrNotADirectory) {
			t.Fatalf("expected ErrNotADirectory, got %v", err)
		}
	})

	t.Run("symlinked root resolves to target", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(dir, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		resolved, err := CanonicaliseRoot(link)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantTarget, err := filepath.EvalSymlinks(target)
		if err != nil {
			t.Fatal(err)
		}
		if resolved != wantTarget {
			t.Errorf("expected %q, got %q", wantTarget, resolved)
		}
	})
}
