package commands

import (
	"github.com/spf13/cobra"

	"github.com/schemabridge-labs/schemabridge/internal/config"
	"github.com/schemabridge-labs/schemabridge/internal/schema"
)

// SchemaOptions holds options for the schema command.
type SchemaOptions struct {
	List   bool
	Format string
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	opts := &SchemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema <source>",
		Short: "Print the normalized column schema of a data source",
		Long: `Schema infers the normalized column-name schema of a single source
and prints it in source order. Useful for checking what the matcher
will see before comparing two sources.`,
		Example: `  # Schema of a CSV file
  schemabridge schema people.csv

  # Schema of a raw column list
  schemabridge schema --list "CitizenID, Full Name, DOB"

  # JSON output
  schemabridge schema registry.json --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.List, "list", false, "Treat the argument as a comma-delimited column list, not a file")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Source format (csv|json|xlsx|xml); inferred from the extension by default")

	return cmd
}

func runSchema(cmd *cobra.Command, opts *SchemaOptions, source string) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	var s schema.Schema
	if opts.List {
		s = schema.FromList(source)
	} else {
		var err error
		if s, err = loadFileSchema(logger, source, opts.Format); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	switch cfg.OutputFormat {
	case "json":
		return renderJSON(w, map[string]schema.Schema{"schema": s})
	case "md", "markdown":
		return renderSchemaMarkdown(w, s)
	default:
		return renderSchemaTable(w, s)
	}
}
