// Package library defines the on-disk layout shared by forge and harvest.
// A library root holds templates/<name>/ trees and the ai_docs_sources/
// reference-doc store. The package also names the asset files recognized
// inside a project and the typed errors both tools return.
package library
