package library

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Library-root directory names.
const (
	TemplatesDir  = "templates"
	DocsSourceDir = "ai_docs_sources"
)

// Asset locations relative to a project or template root.
const (
	GuidanceFile    = "CLAUDE.md"
	ConfigDir       = ".claude"
	CommandsDir     = ConfigDir + "/commands"
	SettingsFile    = ConfigDir + "/settings.local.json"
	MCPConfigFile   = ".mcp.json"
	GitignoreFile   = ".gitignore"
	PRPTemplatesDir = "PRPs/templates"
	ProjectDocsDir  = "ai_docs"
	ReadmeFile      = "README.md"
)

// DefaultTemplate is used when no template name is given.
const DefaultTemplate = "base"

// DefaultDocsCategory is the ai_docs_sources category harvested docs land in.
const DefaultDocsCategory = "general"

// DefaultProjectDirs are created in every forged project unless overridden.
var DefaultProjectDirs = []string{"src", "tests", "docs"}

// DocsCandidates lists, in priority order, where a project may keep its
// reference docs. Only the first existing directory is harvested.
var DocsCandidates = []string{
	"PRPs/ai_docs",
	"ai_docs",
	"docs/ai",
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Library is a resolved library root.
type Library struct {
	Root string
}

// New resolves root to an absolute path. The root is not required to exist;
// harvest creates it on demand.
func New(root string) (Library, error) {
	if root == "" {
		return Library{}, &ConfigError{Reason: "library root is empty"}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Library{}, fmt.Errorf("resolving library root %s: %w", root, err)
	}
	return Library{Root: abs}, nil
}

// TemplatesRoot returns <root>/templates.
func (l Library) TemplatesRoot() string {
	return filepath.Join(l.Root, TemplatesDir)
}

// TemplateDir returns <root>/templates/<name>.
func (l Library) TemplateDir(name string) string {
	return filepath.Join(l.Root, TemplatesDir, name)
}

// DocsRoot returns <root>/ai_docs_sources.
func (l Library) DocsRoot() string {
	return filepath.Join(l.Root, DocsSourceDir)
}

// DocsDir returns <root>/ai_docs_sources/<category>.
func (l Library) DocsDir(category string) string {
	return filepath.Join(l.Root, DocsSourceDir, category)
}

// ValidateName checks a template name. Names are single path segments.
func ValidateName(kind, name string) error {
	if !namePattern.MatchString(name) {
		return &ConfigError{
			Reason: fmt.Sprintf("invalid %s name %q: must match %s", kind, name, namePattern.String()),
		}
	}
	return nil
}

// ValidateLocal checks that rel stays inside the directory it is joined to.
func ValidateLocal(kind, rel string) error {
	if !filepath.IsLocal(rel) {
		return &ConfigError{Reason: fmt.Sprintf("invalid %s %q: must be a relative path inside the target", kind, rel)}
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
