package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/projectforge/internal/branding"
	"github.com/agentx-labs/projectforge/internal/library"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys. Each can also be set as FORGE_<KEY>.
const (
	KeyRoot     = "root"
	KeyTemplate = "template"
)

// Dir returns the path to the config directory (~/.forge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.forge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is the common case.
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// LibraryRoot resolves the library root. An explicit value (the --root flag)
// wins, then FORGE_ROOT or the config file, then the working directory.
func LibraryRoot(explicit string) (library.Library, error) {
	root := explicit
	if root == "" {
		root = viper.GetString(KeyRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return library.Library{}, fmt.Errorf("resolving current directory: %w", err)
		}
		root = cwd
	}
	return library.New(root)
}

// DefaultTemplate returns the configured default template name, falling back
// to library.DefaultTemplate.
func DefaultTemplate() string {
	if v := viper.GetString(KeyTemplate); v != "" {
		return v
	}
	return library.DefaultTemplate
}
