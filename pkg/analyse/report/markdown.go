// Package report renders and writes analysis reports.
package report

import (
	"fmt"
	"strings"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Markdown renders the report with a fixed template: a title, one section
// per file, one subsection per sheet, and one table row per column.
// Structure is deterministic for a given input; only fake cells vary
// between runs.
func Markdown(r *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format(timestampLayout))

	if len(r.Files) == 0 {
		b.WriteString("No spreadsheet files found.\n")
		return b.String()
	}

	for _, file := range r.Files {
		fmt.Fprintf(&b, "## %s\n\n", file.Name)
		if file.Err != "" {
			b.WriteString("*Error: could not read file*\n\n")
			continue
		}
		for _, sheet := range file.Sheets {
			fmt.Fprintf(&b, "### %s\n\n", sheet.Name)
			switch {
			case sheet.Err != "":
				b.WriteString("*Error: could not read sheet*\n\n")
			case sheet.Empty:
				b.WriteString("*(This sheet is empty.)*\n\n")
			default:
				writeColumnTable(&b, sheet.Columns)
			}
		}
	}
	return b.String()
}

func writeColumnTable(b *strings.Builder, columns []models.ColumnProfile) {
	b.WriteString("| Column | Type | Format example | Fake example |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, col := range columns {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			escapeCell(col.Name), escapeCell(string(col.Type)),
			escapeCell(col.Format), escapeCell(col.Fake))
	}
	b.WriteString("\n")
}

// escapeCell keeps arbitrary cell text from breaking the table: pipes and
// backslashes are escaped, newlines become spaces.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
