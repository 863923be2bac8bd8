package library

import (
	"os"
	"path/filepath"

	"github.com/agentx-labs/projectforge/internal/fsutil"
)

// TemplateInfo describes one template directory.
type TemplateInfo struct {
	Name  string
	Files int
}

// HasTemplate reports whether templates/<name> is a directory.
func (l Library) HasTemplate(name string) bool {
	return IsDir(l.TemplateDir(name))
}

// ListTemplates returns every template under <root>/templates in name
// order, with a recursive count of regular files. A missing templates
// directory yields an empty list.
func (l Library) ListTemplates() ([]TemplateInfo, error) {
	entries, err := os.ReadDir(l.TemplatesRoot())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, WrapIO("reading", l.TemplatesRoot(), err)
	}

	var out []TemplateInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(l.TemplatesRoot(), entry.Name())
		n, err := fsutil.CountFiles(dir, fsutil.AllFiles)
		if err != nil {
			return nil, WrapIO("counting files in", dir, err)
		}
		out = append(out, TemplateInfo{Name: entry.Name(), Files: n})
	}

	return out, nil
}
