// Package commands implements the SchemaBridge subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemabridge-labs/schemabridge/internal/config"
	"github.com/schemabridge-labs/schemabridge/internal/extract"
	"github.com/schemabridge-labs/schemabridge/internal/match"
	"github.com/schemabridge-labs/schemabridge/internal/schema"
)

// MatchOptions holds options for the match command.
type MatchOptions struct {
	List    bool
	FormatA string
	FormatB string
}

// NewMatchCommand creates the match command.
func NewMatchCommand() *cobra.Command {
	opts := &MatchOptions{}

	cmd := &cobra.Command{
		Use:   "match <source-a> <source-b>",
		Short: "Match the column schemas of two data sources",
		Long: `Match infers a normalized column-name schema from each of two sources
and reports which columns appear in both, only in the first, and only
in the second.

Sources are files in CSV, JSON, XLSX, or XML format; the format is
inferred from the file extension and can be overridden per side. With
--list, the two arguments are treated as comma-delimited column lists
instead of file paths.`,
		Example: `  # Match two files
  schemabridge match people.csv registry.json

  # Force a format for an extensionless export
  schemabridge match export-a export-b --format-a csv --format-b xml

  # Match two raw column lists
  schemabridge match --list "CitizenID, Full Name, DOB" "citizen_id,dob,address"

  # JSON output
  schemabridge match people.csv registry.json --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.List, "list", false, "Treat arguments as comma-delimited column lists, not files")
	cmd.Flags().StringVar(&opts.FormatA, "format-a", "", "Format of the first source (csv|json|xlsx|xml)")
	cmd.Flags().StringVar(&opts.FormatB, "format-b", "", "Format of the second source (csv|json|xlsx|xml)")

	return cmd
}

func runMatch(cmd *cobra.Command, opts *MatchOptions, a, b string) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	var schemaA, schemaB schema.Schema
	if opts.List {
		schemaA = schema.FromList(a)
		schemaB = schema.FromList(b)
	} else {
		var err error
		if schemaA, err = loadFileSchema(logger, a, opts.FormatA); err != nil {
			return err
		}
		if schemaB, err = loadFileSchema(logger, b, opts.FormatB); err != nil {
			return err
		}
	}

	result := match.Schemas(schemaA, schemaB)

	w := cmd.OutOrStdout()
	switch cfg.OutputFormat {
	case "json":
		return renderJSON(w, result)
	case "md", "markdown":
		return renderMatchMarkdown(w, result)
	default:
		return renderMatchTable(w, result)
	}
}

// loadFileSchema reads a source file and infers its normalized schema.
// Content that fails to parse degrades to an empty schema; unreadable files,
// unknown formats, and undecodable bytes are hard errors.
func loadFileSchema(logger *slog.Logger, path, formatOverride string) (schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	name := path
	if formatOverride != "" {
		name = formatOverride
	}
	format, err := extract.DetectFormat(name)
	if err != nil {
		return nil, err
	}

	if !format.Binary() {
		if data, err = extract.DecodeText(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	fields, err := extract.FieldNames(data, format)
	if err != nil {
		logger.Warn("schema extraction failed, using empty schema", "file", path, "error", err)
		return schema.Schema{}, nil
	}
	return schema.FromFields(fields), nil
}
