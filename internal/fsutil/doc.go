// Package fsutil copies files and pattern-selected trees between directories,
// preserving relative paths, permission bits and modification times.
// Patterns use doublestar syntax, so "**/*.md" selects markdown files at any
// depth and "*.md" selects only the top level.
package fsutil
