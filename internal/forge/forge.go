package forge

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

// Forger builds one project from one template.
type Forger struct {
	lib          library.Library
	projectName  string
	templateName string
	templateDir  string
	dest         string

	out    io.Writer
	logger *zap.Logger
	p      *report.Printer
}

// Option configures a Forger.
type Option func(*Forger)

// WithOutput sets where progress lines are printed. Defaults to discarding them.
func WithOutput(w io.Writer) Option {
	return func(f *Forger) { f.out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Forger) { f.logger = l }
}

// Result reports what a forge run produced.
type Result struct {
	Dest          string
	TemplateFiles int
	AIDocs        int
	Dirs          []string
	Gitignore     Outcome
	Readme        Outcome
	Warnings      []string
}

// New validates the inputs and resolves the destination as
// destinationDir/projectName, with destinationDir defaulting to the current
// directory. It fails with a *library.ConfigError if the template is missing
// or the destination already exists. Nothing is written.
func New(lib library.Library, projectName, templateName, destinationDir string, opts ...Option) (*Forger, error) {
	if err := library.ValidateLocal("project name", projectName); err != nil {
		return nil, err
	}
	if err := library.ValidateName("template", templateName); err != nil {
		return nil, err
	}

	f := &Forger{
		lib:          lib,
		projectName:  projectName,
		templateName: templateName,
		templateDir:  lib.TemplateDir(templateName),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.p = report.New(f.out, logging.OrNop(f.logger).With(zap.String("project", projectName), zap.String("template", templateName)))

	base := destinationDir
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving current directory: %w", err)
		}
		base = cwd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving destination %s: %w", destinationDir, err)
	}
	f.dest = filepath.Join(base, projectName)

	if !lib.HasTemplate(templateName) {
		return nil, &library.ConfigError{Reason: "template does not exist: " + templateName, Path: f.templateDir}
	}
	if _, err := os.Lstat(f.dest); err == nil {
		return nil, &library.ConfigError{Reason: "project directory already exists", Path: f.dest}
	} else if !os.IsNotExist(err) {
		return nil, library.WrapIO("checking", f.dest, err)
	}

	return f, nil
}

// Dest returns the absolute project directory.
func (f *Forger) Dest() string { return f.dest }

// TemplateDir returns the absolute template directory.
func (f *Forger) TemplateDir() string { return f.templateDir }

// Warnings returns every warning reported so far.
func (f *Forger) Warnings() []string { return f.p.Warnings() }

// CopyTemplateFiles copies every file under the template into the project,
// preserving relative paths and file metadata. It returns the count copied.
func (f *Forger) CopyTemplateFiles() (int, error) {
	f.p.Section("Copying template files...")

	n, err := fsutil.CopyMatching(f.templateDir, f.dest, fsutil.AllFiles, func(rel string) {
		f.p.Done("%s", filepath.ToSlash(rel))
	})
	if err != nil {
		return n, library.WrapIO("copying template", f.templateDir, err)
	}
	return n, nil
}

// CopyAIDocs copies reference docs from the library store into
// <dest>/ai_docs. With categories it copies only <category>/**/*.md for each
// named category, warning on missing ones; otherwise every *.md in the store.
// A missing store is a warning, not an error.
func (f *Forger) CopyAIDocs(categories []string) (int, error) {
	store := f.lib.DocsRoot()
	if !library.IsDir(store) {
		f.p.Warn("No AI docs sources found at %s", store)
		return 0, nil
	}

	destDocs := filepath.Join(f.dest, library.ProjectDocsDir)
	if err := os.MkdirAll(destDocs, 0o755); err != nil {
		return 0, library.WrapIO("creating", destDocs, err)
	}

	f.p.Section("Copying AI documentation...")

	if len(categories) == 0 {
		n, err := fsutil.CopyMatching(store, destDocs, fsutil.AllMarkdown, func(rel string) {
			f.p.Done("%s", filepath.ToSlash(rel))
		})
		if err != nil {
			return n, library.WrapIO("copying AI docs from", store, err)
		}
		return n, nil
	}

	copied := 0
	for _, category := range categories {
		if err := library.ValidateLocal("AI docs category", category); err != nil {
			f.p.Warn("Category not found: %s", category)
			continue
		}
		src := f.lib.DocsDir(category)
		if !library.IsDir(src) {
			f.p.Warn("Category not found: %s", category)
			continue
		}
		n, err := fsutil.CopyMatching(src, filepath.Join(destDocs, category), fsutil.AllMarkdown, func(rel string) {
			f.p.Done("%s/%s", filepath.ToSlash(category), filepath.ToSlash(rel))
		})
		copied += n
		if err != nil {
			return copied, library.WrapIO("copying AI docs from", src, err)
		}
	}
	return copied, nil
}

// CreateProjectStructure creates each named directory under the project,
// defaulting to library.DefaultProjectDirs. Existing directories are left as-is.
func (f *Forger) CreateProjectStructure(dirs []string) ([]string, error) {
	if len(dirs) == 0 {
		dirs = library.DefaultProjectDirs
	}

	f.p.Section("Creating project structure...")

	created := make([]string, 0, len(dirs))
	for _, name := range dirs {
		if err := library.ValidateLocal("directory", name); err != nil {
			return created, err
		}
		path := filepath.Join(f.dest, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return created, library.WrapIO("creating", path, err)
		}
		f.p.Done("%s/", filepath.ToSlash(name))
		created = append(created, name)
	}
	return created, nil
}

// Forge runs every step in order: create the project directory, copy the
// template, optionally copy AI docs, create structure directories, write the
// .gitignore and write the README. A failure part-way leaves what was
// already written in place.
func (f *Forger) Forge(includeAIDocs bool, categories, extraDirs []string) (*Result, error) {
	f.p.Line("Forging project: %s", f.projectName)
	f.p.Line("Template: %s", f.templateName)
	f.p.Line("Location: %s", f.dest)

	for _, name := range extraDirs {
		if err := library.ValidateLocal("directory", name); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(f.dest), 0o755); err != nil {
		return nil, library.WrapIO("creating", filepath.Dir(f.dest), err)
	}
	if err := os.Mkdir(f.dest, 0o755); err != nil {
		if os.IsExist(err) {
			return nil, &library.ConfigError{Reason: "project directory already exists", Path: f.dest}
		}
		return nil, library.WrapIO("creating", f.dest, err)
	}

	res := &Result{Dest: f.dest}

	var err error
	if res.TemplateFiles, err = f.CopyTemplateFiles(); err != nil {
		return res, err
	}

	if includeAIDocs {
		if res.AIDocs, err = f.CopyAIDocs(categories); err != nil {
			return res, err
		}
	}

	if res.Dirs, err = f.CreateProjectStructure(extraDirs); err != nil {
		return res, err
	}

	f.p.Section("Writing project files...")
	if res.Gitignore, err = f.CreateGitignore(); err != nil {
		return res, err
	}
	if res.Readme, err = f.CreateReadme(); err != nil {
		return res, err
	}

	res.Warnings = f.p.Warnings()

	f.p.Section("Project forged successfully!")
	f.p.Line("  Template files: %d", res.TemplateFiles)
	f.p.Line("  AI docs: %d", res.AIDocs)
	f.p.Section("Next steps:")
	f.p.Line("  cd %s", filepath.Base(f.dest))
	f.p.Line("  claude")

	return res, nil
}
