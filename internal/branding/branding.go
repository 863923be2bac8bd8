// Package branding provides compile-time identity values for both CLIs.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binaries.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	ForgeName   string `yaml:"forge_name"`
	HarvestName string `yaml:"harvest_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			ForgeName:   "forge",
			HarvestName: "harvest",
			DisplayName: "Project Forge",
			Description: "Scaffold projects from templates and harvest assets back into them",
			HomeDir:     ".forge",
			EnvPrefix:   "FORGE",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// ForgeName returns the project-creation command name (e.g., "forge").
func ForgeName() string { load(); return defaults.ForgeName }

// HarvestName returns the asset-harvesting command name (e.g., "harvest").
func HarvestName() string { load(); return defaults.HarvestName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".forge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "FORGE_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
