package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// countRow is one line of a name/count summary table.
type countRow struct {
	name  string
	count int
}

// renderCountTable renders the two-column summaries used by the conversion
// report and catalog inspection, counts right-aligned.
func renderCountTable(nameHeader, countHeader string, rows []countRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{nameHeader, countHeader})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.name, row.count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// writeJSON prints v as indented JSON on the command's stdout, the output
// shape consumed when results are piped rather than read on a terminal.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
