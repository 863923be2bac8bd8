package harvest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/projectforge/internal/fsutil"
	"github.com/agentx-labs/projectforge/internal/library"
	"github.com/agentx-labs/projectforge/internal/logging"
	"github.com/agentx-labs/projectforge/internal/report"
	"go.uber.org/zap"
)

// Harvester copies assets from one source project into one template.
type Harvester struct {
	lib          library.Library
	source       string
	templateName string
	templateDir  string

	out    io.Writer
	logger *zap.Logger
	p      *report.Printer
}

// Option configures a Harvester.
type Option func(*Harvester)

// WithOutput sets where progress lines are printed. Defaults to discarding them.
func WithOutput(w io.Writer) Option {
	return func(h *Harvester) { h.out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Harvester) { h.logger = l }
}

// Result reports what a harvest copied.
type Result struct {
	GuidanceFile bool
	Commands     int
	Settings     bool
	MCPConfig    bool
	Gitignore    bool
	PRPTemplates int
	AIDocs       int
	Warnings     []string
}

// New resolves sourcePath to an absolute path and fails with a
// *library.ConfigError if it is not an existing directory. The template
// directory is created on first write.
func New(lib library.Library, sourcePath, templateName string, opts ...Option) (*Harvester, error) {
	if err := library.ValidateName("template", templateName); err != nil {
		return nil, err
	}

	source, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolving source %s: %w", sourcePath, err)
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &library.ConfigError{Reason: "source project does not exist", Path: source}
		}
		return nil, library.WrapIO("checking", source, err)
	}
	if !info.IsDir() {
		return nil, &library.ConfigError{Reason: "source project is not a directory", Path: source}
	}

	h := &Harvester{
		lib:          lib,
		source:       source,
		templateName: templateName,
		templateDir:  lib.TemplateDir(templateName),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.p = report.New(h.out, logging.OrNop(h.logger).With(zap.String("source", source), zap.String("template", templateName)))

	return h, nil
}

// Source returns the absolute source project path.
func (h *Harvester) Source() string { return h.source }

// TemplateDir returns the absolute template directory written to.
func (h *Harvester) TemplateDir() string { return h.templateDir }

// Warnings returns every warning reported so far.
func (h *Harvester) Warnings() []string { return h.p.Warnings() }

// harvestFile copies one fixed-name asset from the source root to the same
// relative path in the template.
func (h *Harvester) harvestFile(rel string) (bool, error) {
	src := filepath.Join(h.source, filepath.FromSlash(rel))
	if !fsutil.IsFile(src) {
		h.p.Warn("No %s found", rel)
		return false, nil
	}

	dst := filepath.Join(h.templateDir, filepath.FromSlash(rel))
	if err := fsutil.CopyFile(src, dst); err != nil {
		return false, library.WrapIO("copying", src, err)
	}
	h.p.Done("Copied %s", rel)
	return true, nil
}

// HarvestGuidanceFile copies CLAUDE.md from the source root.
func (h *Harvester) HarvestGuidanceFile() (bool, error) {
	return h.harvestFile(library.GuidanceFile)
}

// HarvestSettings copies .claude/settings.local.json.
func (h *Harvester) HarvestSettings() (bool, error) {
	return h.harvestFile(library.SettingsFile)
}

// HarvestMCPConfig copies .mcp.json.
func (h *Harvester) HarvestMCPConfig() (bool, error) {
	return h.harvestFile(library.MCPConfigFile)
}

// HarvestGitignore copies .gitignore.
func (h *Harvester) HarvestGitignore() (bool, error) {
	return h.harvestFile(library.GitignoreFile)
}

// HarvestCommands copies from .claude/commands/. With names, exactly those
// files are copied and each missing name is a warning. Without names, every
// *.md under the commands tree is copied, preserving relative paths.
func (h *Harvester) HarvestCommands(names []string) (int, error) {
	src := filepath.Join(h.source, filepath.FromSlash(library.CommandsDir))
	if !library.IsDir(src) {
		h.p.Warn("No %s/ directory found", library.CommandsDir)
		return 0, nil
	}

	dst := filepath.Join(h.templateDir, filepath.FromSlash(library.CommandsDir))
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, library.WrapIO("creating", dst, err)
	}

	if len(names) == 0 {
		n, err := fsutil.CopyMatching(src, dst, fsutil.AllMarkdown, func(rel string) {
			h.p.Done("Copied command: %s", filepath.ToSlash(rel))
		})
		if err != nil {
			return n, library.WrapIO("copying commands from", src, err)
		}
		return n, nil
	}

	copied := 0
	for _, name := range names {
		rel := filepath.FromSlash(name)
		if library.ValidateLocal("command", rel) != nil || !fsutil.IsFile(filepath.Join(src, rel)) {
			h.p.Warn("Command not found: %s", name)
			continue
		}
		if err := fsutil.CopyFile(filepath.Join(src, rel), filepath.Join(dst, rel)); err != nil {
			return copied, library.WrapIO("copying command", filepath.Join(src, rel), err)
		}
		h.p.Done("Copied command: %s", name)
		copied++
	}
	return copied, nil
}

// HarvestPRPTemplates copies the *.md files directly inside PRPs/templates/.
// Subdirectories are not descended into.
func (h *Harvester) HarvestPRPTemplates() (int, error) {
	src := filepath.Join(h.source, filepath.FromSlash(library.PRPTemplatesDir))
	if !library.IsDir(src) {
		h.p.Warn("No PRP templates found")
		return 0, nil
	}

	dst := filepath.Join(h.templateDir, filepath.FromSlash(library.PRPTemplatesDir))
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, library.WrapIO("creating", dst, err)
	}

	n, err := fsutil.CopyMatching(src, dst, fsutil.TopMarkdown, func(rel string) {
		h.p.Done("Copied PRP template: %s", rel)
	})
	if err != nil {
		return n, library.WrapIO("copying PRP templates from", src, err)
	}
	return n, nil
}

// HarvestAll runs every harvest step and, when includeAIDocs is set, the AI
// docs harvest into aiDocsSubdir. Missing assets are warnings; only
// filesystem failures abort.
func (h *Harvester) HarvestAll(includeAIDocs bool, aiDocsSubdir string) (*Result, error) {
	if includeAIDocs {
		if _, err := docsSubdir(aiDocsSubdir); err != nil {
			return nil, err
		}
	}

	h.p.Line("Harvesting from: %s", filepath.Base(h.source))
	h.p.Line("Template: %s", h.templateName)
	h.p.Line("")

	res := &Result{}
	var err error

	if res.GuidanceFile, err = h.HarvestGuidanceFile(); err != nil {
		return res, err
	}
	if res.Commands, err = h.HarvestCommands(nil); err != nil {
		return res, err
	}
	if res.Settings, err = h.HarvestSettings(); err != nil {
		return res, err
	}
	if res.MCPConfig, err = h.HarvestMCPConfig(); err != nil {
		return res, err
	}
	if res.Gitignore, err = h.HarvestGitignore(); err != nil {
		return res, err
	}
	if res.PRPTemplates, err = h.HarvestPRPTemplates(); err != nil {
		return res, err
	}
	if includeAIDocs {
		if res.AIDocs, err = h.HarvestAIDocs(aiDocsSubdir); err != nil {
			return res, err
		}
	}

	res.Warnings = h.p.Warnings()

	h.p.Section("Harvest complete!")
	h.p.Line("  Commands: %d", res.Commands)
	h.p.Line("  PRP templates: %d", res.PRPTemplates)
	h.p.Line("  AI docs: %d", res.AIDocs)

	return res, nil
}

// HarvestSelected copies only the guidance file, the named commands and the
// local settings.
func (h *Harvester) HarvestSelected(commandNames []string) (*Result, error) {
	h.p.Line("Harvesting specific items from: %s", filepath.Base(h.source))
	h.p.Line("")

	res := &Result{}
	var err error

	if res.GuidanceFile, err = h.HarvestGuidanceFile(); err != nil {
		return res, err
	}
	if res.Commands, err = h.HarvestCommands(commandNames); err != nil {
		return res, err
	}
	if res.Settings, err = h.HarvestSettings(); err != nil {
		return res, err
	}

	res.Warnings = h.p.Warnings()
	return res, nil
}
