package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/schemabridge-labs/schemabridge/internal/match"
	"github.com/schemabridge-labs/schemabridge/internal/schema"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderMatchTable(w io.Writer, result match.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Status"})

	for _, name := range result.Matches {
		t.AppendRow(table.Row{name, "matched"})
	}
	for _, name := range result.UnmatchedA {
		t.AppendRow(table.Row{name, "only in A"})
	}
	for _, name := range result.UnmatchedB {
		t.AppendRow(table.Row{name, "only in B"})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "(%d matched, %d only in A, %d only in B)\n",
		len(result.Matches), len(result.UnmatchedA), len(result.UnmatchedB))
	return nil
}

func renderMatchMarkdown(w io.Writer, result match.Result) error {
	_, _ = fmt.Fprintln(w, "| Column | Status |")
	_, _ = fmt.Fprintln(w, "| --- | --- |")
	for _, name := range result.Matches {
		_, _ = fmt.Fprintf(w, "| %s | matched |\n", name)
	}
	for _, name := range result.UnmatchedA {
		_, _ = fmt.Fprintf(w, "| %s | only in A |\n", name)
	}
	for _, name := range result.UnmatchedB {
		_, _ = fmt.Fprintf(w, "| %s | only in B |\n", name)
	}
	return nil
}

func renderSchemaTable(w io.Writer, s schema.Schema) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Column"})

	for i, name := range s {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "(%d columns)\n", len(s))
	return nil
}

func renderSchemaMarkdown(w io.Writer, s schema.Schema) error {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join([]string{"#", "Column"}, " | "))
	_, _ = fmt.Fprintln(w, "| --- | --- |")
	for i, name := range s {
		_, _ = fmt.Fprintf(w, "| %d | %s |\n", i+1, name)
	}
	return nil
}
