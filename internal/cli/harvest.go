package cli

import (
	"github.com/agentx-labs/projectforge/internal/branding"
	"github.com/agentx-labs/projectforge/internal/harvest"
	"github.com/agentx-labs/projectforge/internal/library"
	"github.com/spf13/cobra"
)

type harvestFlags struct {
	commonFlags
	template     string
	commands     []string
	noAIDocs     bool
	aiDocsSubdir string
}

// NewHarvestCommand returns the root command of the harvest binary.
func NewHarvestCommand(info BuildInfo) *cobra.Command {
	var flags harvestFlags

	cmd := &cobra.Command{
		Use:   branding.HarvestName() + " <source>",
		Short: "Copy reusable assets from an existing project into a template",
		Long: branding.DisplayName() + ": " + branding.Description() + `.

Copy CLAUDE.md, .claude/commands, local settings, .mcp.json, .gitignore,
PRP templates and reference docs from an existing project into a library
template. Reference docs go to ai_docs_sources/<subdir>.

With --commands only the guidance file, the named commands and the local
settings are copied.

Examples:
  harvest ../my-service
  harvest ../my-service --template go-service --ai-docs-subdir go
  harvest ../my-service --commands build.md,test.md`,
		Args:          cobra.ExactArgs(1),
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarvest(cmd, args[0], &flags)
		},
	}

	flags.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&flags.template, "template", "t", library.DefaultTemplate, "Template to create or update")
	f.StringSliceVarP(&flags.commands, "commands", "c", nil, "Specific command files to copy (default: all)")
	f.BoolVar(&flags.noAIDocs, "no-ai-docs", false, "Skip copying reference docs")
	f.StringVar(&flags.aiDocsSubdir, "ai-docs-subdir", library.DefaultDocsCategory, "Category under ai_docs_sources for harvested docs")

	return cmd
}

func runHarvest(cmd *cobra.Command, source string, flags *harvestFlags) error {
	lib, logger, err := flags.setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	h, err := harvest.New(lib, source, templateName(cmd, flags.template),
		harvest.WithOutput(cmd.OutOrStdout()),
		harvest.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if len(flags.commands) > 0 {
		_, err = h.HarvestSelected(flags.commands)
		return err
	}

	_, err = h.HarvestAll(!flags.noAIDocs, flags.aiDocsSubdir)
	return err
}
