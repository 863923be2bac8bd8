package forge

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/agentx-labs/projectforge/internal/branding"
	"github.com/agentx-labs/projectforge/internal/library"
)

//go:embed assets/README.md.tmpl
var readmeTemplate string

var readmeTmpl = template.Must(template.New("README.md").Parse(readmeTemplate))

type readmeData struct {
	ProjectName  string
	TemplateName string
	Tool         string
}

// CreateReadme writes <dest>/README.md from the embedded template. An
// existing README is never touched; that case is reported as a warning.
func (f *Forger) CreateReadme() (Outcome, error) {
	path := filepath.Join(f.dest, library.ReadmeFile)

	if _, err := os.Lstat(path); err == nil {
		f.p.Warn("%s already exists, skipping", library.ReadmeFile)
		return Skipped, nil
	} else if !os.IsNotExist(err) {
		return "", library.WrapIO("checking", path, err)
	}

	var buf bytes.Buffer
	err := readmeTmpl.Execute(&buf, readmeData{
		ProjectName:  f.projectName,
		TemplateName: f.templateName,
		Tool:         branding.ForgeName(),
	})
	if err != nil {
		return "", fmt.Errorf("rendering README: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", library.WrapIO("writing", path, err)
	}
	f.p.Done("Created %s", library.ReadmeFile)
	return Created, nil
}
