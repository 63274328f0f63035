package cli

import (
	"fmt"
	"io"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderSummary prints a one-line-per-file overview of the run.
func renderSummary(w io.Writer, r *models.Report) {
	if len(r.Files) == 0 {
		fmt.Fprintln(w, "No spreadsheet files found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Sheets", "Columns", "Status"})

	for _, file := range r.Files {
		if file.Err != "" {
			t.AppendRow(table.Row{file.Name, "-", "-", "error"})
			continue
		}
		columns := 0
		for _, sheet := range file.Sheets {
			columns += len(sheet.Columns)
		}
		t.AppendRow(table.Row{file.Name, len(file.Sheets), columns, "ok"})
	}
	t.Render()
}
