// Package harvest pulls recognized assets out of an existing project into a
// library template or the shared reference-doc store.
//
// Single-file assets (guidance file, local settings, MCP config, gitignore)
// follow copy-if-exists, warn-if-absent. Tree assets (commands, PRP
// templates, AI docs) copy everything or a named subset. Nothing is ever
// deleted, and files with matching names are overwritten.
package harvest
