package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/projectforge/internal/branding"
	"github.com/agentx-labs/projectforge/internal/forge"
	"github.com/agentx-labs/projectforge/internal/library"
	"github.com/spf13/cobra"
)

type forgeFlags struct {
	commonFlags
	template    string
	destination string
	list        bool
	aiDocs      []string
	dirs        []string
}

// NewForgeCommand returns the root command of the forge binary.
func NewForgeCommand(info BuildInfo) *cobra.Command {
	var flags forgeFlags

	cmd := &cobra.Command{
		Use:   branding.ForgeName() + " [project-name]",
		Short: "Create a new project from a template",
		Long: branding.DisplayName() + ": " + branding.Description() + `.

Create a new project directory from a template in the library.
The template tree is copied as-is, then conventional directories are created,
the standard .gitignore block is written or appended, and a README is written
unless the template already provides one.

Examples:
  forge my-app
  forge my-app --template python --destination ~/code
  forge my-app --ai-docs=go,testing --dirs=cmd,internal
  forge --list

List flags take comma-separated values: --dirs=src,tests rather than
--dirs src tests.`,
		Args:          projectNameArg,
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForge(cmd, args, &flags)
		},
	}

	flags.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&flags.template, "template", "t", library.DefaultTemplate, "Template to use")
	f.StringVarP(&flags.destination, "destination", "d", "", "Parent directory for the project (default: current directory)")
	f.BoolVarP(&flags.list, "list", "l", false, "List available templates")
	f.StringSliceVar(&flags.aiDocs, "ai-docs", nil, "Copy reference docs; optionally limit to categories (--ai-docs=go,testing)")
	f.Lookup("ai-docs").NoOptDefVal = " "
	f.StringSliceVar(&flags.dirs, "dirs", nil, "Directories to create (default: src,tests,docs)")

	return cmd
}

// projectNameArg accepts at most one positional argument. Extra arguments
// usually come from space-separated list values.
func projectNameArg(cmd *cobra.Command, args []string) error {
	if len(args) <= 1 {
		return nil
	}
	return fmt.Errorf("accepts at most 1 arg(s), received %d (%q); list flags take comma-separated values, e.g. --ai-docs=go,testing --dirs=src,tests",
		len(args), args[1:])
}

func runForge(cmd *cobra.Command, args []string, flags *forgeFlags) error {
	lib, logger, err := flags.setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()

	if flags.list {
		return printTemplates(cmd, lib)
	}

	if len(args) == 0 {
		return fmt.Errorf("project name is required (unless using --list)")
	}

	f, err := forge.New(lib, args[0], templateName(cmd, flags.template), flags.destination,
		forge.WithOutput(out),
		forge.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	includeDocs := cmd.Flags().Changed("ai-docs")
	_, err = f.Forge(includeDocs, categories(flags.aiDocs), flags.dirs)
	return err
}

// categories drops blank entries left by a bare --ai-docs.
func categories(raw []string) []string {
	var out []string
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func printTemplates(cmd *cobra.Command, lib library.Library) error {
	out := cmd.OutOrStdout()
	templates, err := lib.ListTemplates()
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Fprintln(out, "No templates found.")
		return nil
	}

	fmt.Fprintln(out, "\nAvailable templates:")
	fmt.Fprintln(out)
	for _, t := range templates {
		fmt.Fprintf(out, "  %s (%d files)\n", t.Name, t.Files)
	}
	fmt.Fprintln(out)
	return nil
}
