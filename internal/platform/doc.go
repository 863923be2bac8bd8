// Package platform carries file metadata across copies. On Unix systems it
// applies permission bits and timestamps directly. On Windows permission
// bits are not applied because Windows does not support Unix-style modes.
package platform
