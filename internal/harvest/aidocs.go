package harvest

import (
	"os"
	"path/filepath"

	"github.com/agentx-labs/projectforge/internal/fsutil"
	"github.com/agentx-labs/projectforge/internal/library"
	"go.uber.org/zap"
)

// findDocsSource returns the first of library.DocsCandidates that is a
// directory in the source project. Later candidates are never consulted once
// one matches.
func (h *Harvester) findDocsSource() (string, bool) {
	for _, candidate := range library.DocsCandidates {
		dir := filepath.Join(h.source, filepath.FromSlash(candidate))
		if library.IsDir(dir) {
			return dir, true
		}
	}
	return "", false
}

func docsSubdir(name string) (string, error) {
	if name == "" {
		name = library.DefaultDocsCategory
	}
	if err := library.ValidateLocal("AI docs subdirectory", name); err != nil {
		return "", err
	}
	return name, nil
}

// HarvestAIDocs copies every *.md under the first existing docs candidate
// into ai_docs_sources/<targetSubdir>, preserving relative paths.
func (h *Harvester) HarvestAIDocs(targetSubdir string) (int, error) {
	targetSubdir, err := docsSubdir(targetSubdir)
	if err != nil {
		return 0, err
	}

	src, ok := h.findDocsSource()
	if !ok {
		h.p.Warn("No AI docs directory found")
		return 0, nil
	}
	h.p.Logger().Debug("harvesting AI docs", zap.String("dir", src))

	dst := h.lib.DocsDir(targetSubdir)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, library.WrapIO("creating", dst, err)
	}

	n, err := fsutil.CopyMatching(src, dst, fsutil.AllMarkdown, func(rel string) {
		h.p.Done("Copied AI doc: %s", filepath.ToSlash(rel))
	})
	if err != nil {
		return n, library.WrapIO("copying AI docs from", src, err)
	}
	return n, nil
}
