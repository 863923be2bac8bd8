package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/projectforge/internal/platform"
	"github.com/bmatcuk/doublestar/v4"
)

// Common selection patterns.
const (
	AllFiles      = "**"
	AllMarkdown   = "**/*.md"
	TopMarkdown   = "*.md"
	dirPermNormal = 0o755
)

// CopyFile copies a single regular file from src to dst, creating parent
// directories and preserving permissions and modification time. An existing
// dst is overwritten.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPermNormal); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return platform.PreserveMetadata(dst, srcInfo)
}

// CopyMatching copies every regular file under srcRoot whose slash-separated
// relative path matches pattern to the same relative path under dstRoot.
// onCopy, if non-nil, is called with each copied relative path. It returns
// the number of files copied; on error the count reflects files copied so far.
func CopyMatching(srcRoot, dstRoot, pattern string, onCopy func(rel string)) (int, error) {
	copied := 0
	err := walkFiles(srcRoot, pattern, func(rel string) error {
		src := filepath.Join(srcRoot, rel)
		dst := filepath.Join(dstRoot, rel)
		if err := CopyFile(src, dst); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
		copied++
		if onCopy != nil {
			onCopy(rel)
		}
		return nil
	})
	return copied, err
}

// CountFiles returns the number of regular files under root matching pattern.
func CountFiles(root, pattern string) (int, error) {
	n := 0
	err := walkFiles(root, pattern, func(string) error {
		n++
		return nil
	})
	return n, err
}

// walkFiles calls fn with the OS-specific relative path of every regular
// file under root matching pattern. Symlinks are followed to their targets;
// anything that does not resolve to a regular file is skipped.
func walkFiles(root, pattern string, fn func(rel string) error) error {
	return doublestar.GlobWalk(os.DirFS(root), pattern, func(match string, _ os.DirEntry) error {
		rel := filepath.FromSlash(match)
		info, err := os.Stat(filepath.Join(root, rel))
		if os.IsNotExist(err) {
			return nil // dangling symlink
		}
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return fn(rel)
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
}

// IsFile reports whether path exists and resolves to a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
