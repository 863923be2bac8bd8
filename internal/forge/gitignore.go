package forge

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/projectforge/internal/library"
)

//go:embed assets/gitignore.block
var gitignoreBlock string

// GitignoreMarker is the comment line whose presence means the standard
// block has already been written.
const GitignoreMarker = "# Claude Code"

// Outcome describes what a write step did to its file.
type Outcome string

const (
	Created Outcome = "created"
	Updated Outcome = "updated"
	Skipped Outcome = "skipped"
)

// CreateGitignore writes the standard ignore block to <dest>/.gitignore. If
// the file exists, the block is appended only when GitignoreMarker is absent.
// Individual patterns are not deduplicated.
func (f *Forger) CreateGitignore() (Outcome, error) {
	path := filepath.Join(f.dest, library.GitignoreFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", library.WrapIO("reading", path, err)
		}
		if err := os.WriteFile(path, []byte(gitignoreBlock), 0o644); err != nil {
			return "", library.WrapIO("writing", path, err)
		}
		f.p.Done("Created %s", library.GitignoreFile)
		return Created, nil
	}

	if strings.Contains(string(content), GitignoreMarker) {
		f.p.Logger().Debug(".gitignore already carries the standard block")
		return Skipped, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", library.WrapIO("opening", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString("\n" + gitignoreBlock); err != nil {
		return "", library.WrapIO("appending to", path, err)
	}
	f.p.Done("Updated %s", library.GitignoreFile)
	return Updated, nil
}
