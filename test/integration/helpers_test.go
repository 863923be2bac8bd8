//go:build integration

package integration_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/agentx-labs/projectforge/internal/library"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	Lib        library.Library // library root with templates/ and ai_docs_sources/
	SourceDir  string          // an existing project to harvest from
	ProjectDir string          // parent directory forged projects land in
}

// setupTestEnv creates isolated temp directories and points FORGE_ROOT at the
// library so nothing touches the real user config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Lib:        library.Library{Root: t.TempDir()},
		SourceDir:  t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("HOME", t.TempDir())
	t.Setenv("FORGE_ROOT", env.Lib.Root)

	return env
}

// setupSourceProject writes a project carrying every recognized asset.
func setupSourceProject(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "CLAUDE.md"), "# Service guidance\n\nUse table-driven tests.\n")
	writeFile(t, filepath.Join(dir, ".claude/commands/build.md"), "Run make build.\n")
	writeFile(t, filepath.Join(dir, ".claude/commands/review/pr.md"), "Review the open PR.\n")
	writeFile(t, filepath.Join(dir, ".claude/settings.local.json"), `{"permissions":{"allow":["Bash(make:*)"]}}`)
	writeFile(t, filepath.Join(dir, ".mcp.json"), `{"mcpServers":{}}`)
	writeFile(t, filepath.Join(dir, ".gitignore"), "bin/\n")
	writeFile(t, filepath.Join(dir, "PRPs/templates/prp_base.md"), "## Goal\n")
	writeFile(t, filepath.Join(dir, "PRPs/ai_docs/go-errors.md"), "Wrap errors with %w.\n")

	// Project source the harvest must ignore.
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "docs/ai/ignored.md"), "lower priority location\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// listFiles returns the slash-separated relative paths of every regular file under root.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
