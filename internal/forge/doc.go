// Package forge materializes a new project directory from a library
// template. A forge run copies the template tree, optionally overlays
// reference docs from the ai_docs_sources store, creates conventional empty
// directories, and writes or extends the project's .gitignore and README.
package forge
