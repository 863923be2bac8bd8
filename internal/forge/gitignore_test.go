package forge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForgedDir(t *testing.T) *Forger {
	t.Helper()
	lib := setupLibrary(t)
	f, err := New(lib, "demo", "base", t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(f.Dest(), 0o755))
	return f
}

func TestCreateGitignoreNew(t *testing.T) {
	f := newForgedDir(t)

	outcome, err := f.CreateGitignore()
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)

	content := readFile(t, filepath.Join(f.Dest(), ".gitignore"))
	assert.True(t, strings.HasPrefix(content, "# Claude Code\n.claude/settings.local.json\n"))
	assert.True(t, strings.HasSuffix(content, "Thumbs.db\n"))
	for _, header := range []string{"# Python", "# IDEs", "# OS"} {
		assert.Contains(t, content, header)
	}
}

func TestCreateGitignoreIdempotent(t *testing.T) {
	f := newForgedDir(t)

	_, err := f.CreateGitignore()
	require.NoError(t, err)
	outcome, err := f.CreateGitignore()
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)

	content := readFile(t, filepath.Join(f.Dest(), ".gitignore"))
	assert.Equal(t, 1, strings.Count(content, GitignoreMarker))
}

func TestCreateGitignoreAppendsOnceToExisting(t *testing.T) {
	f := newForgedDir(t)
	path := filepath.Join(f.Dest(), ".gitignore")
	writeFile(t, path, "dist/")

	outcome, err := f.CreateGitignore()
	require.NoError(t, err)
	assert.Equal(t, Updated, outcome)

	_, err = f.CreateGitignore()
	require.NoError(t, err)

	content := readFile(t, path)
	assert.True(t, strings.HasPrefix(content, "dist/\n# Claude Code\n"))
	assert.Equal(t, 1, strings.Count(content, GitignoreMarker))
}

func TestCreateGitignoreDoesNotDedupePatterns(t *testing.T) {
	f := newForgedDir(t)
	path := filepath.Join(f.Dest(), ".gitignore")
	writeFile(t, path, "# Editor files\n.vscode/\n.idea/\n")

	_, err := f.CreateGitignore()
	require.NoError(t, err)

	content := readFile(t, path)
	assert.Equal(t, 2, strings.Count(content, ".vscode/\n"))
}
