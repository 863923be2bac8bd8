// Package config manages user-level settings stored at ~/.forge/config.yaml.
// It resolves the library root both CLIs operate on and the default template
// name, with FORGE_* environment variables overriding the file.
package config
