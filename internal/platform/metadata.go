package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// PreserveMetadata copies the permission bits and modification time of src
// onto path. The access time is set to the same instant since fs.FileInfo
// does not expose it portably.
func PreserveMetadata(path string, src fs.FileInfo) error {
	if err := Chmod(path, src.Mode().Perm()); err != nil {
		return err
	}
	mtime := src.ModTime()
	return os.Chtimes(path, mtime, mtime)
}
