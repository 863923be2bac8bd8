package cli

import (
	"fmt"

	"github.com/agentx-labs/projectforge/internal/branding"
	"github.com/agentx-labs/projectforge/internal/config"
	"github.com/agentx-labs/projectforge/internal/library"
	"github.com/agentx-labs/projectforge/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BuildInfo carries values injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// commonFlags are registered on both commands.
type commonFlags struct {
	root    string
	verbose bool
}

func (c *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.root, "root", "",
		fmt.Sprintf("Library root holding templates/ and ai_docs_sources/ (default: $%s, config file, or current directory)", branding.EnvVar(config.KeyRoot)))
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "Write debug diagnostics to stderr")
}

// setup loads user config and resolves the library root and logger.
func (c *commonFlags) setup(cmd *cobra.Command) (library.Library, *zap.Logger, error) {
	if err := config.Load(); err != nil {
		return library.Library{}, nil, err
	}
	lib, err := config.LibraryRoot(c.root)
	if err != nil {
		return library.Library{}, nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), c.verbose)
	logger.Debug("resolved library root", zap.String("root", lib.Root))
	return lib, logger, nil
}

// templateName returns the --template value, or the configured default when
// the flag was not given.
func templateName(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("template") {
		return flagValue
	}
	return config.DefaultTemplate()
}

// run executes cmd and prints any error as a single line on its output.
func run(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		return err
	}
	return nil
}

// ExecuteForge runs the forge command with build info injected via ldflags.
func ExecuteForge(info BuildInfo) error {
	return run(NewForgeCommand(info))
}

// ExecuteHarvest runs the harvest command with build info injected via ldflags.
func ExecuteHarvest(info BuildInfo) error {
	return run(NewHarvestCommand(info))
}
