package models

import "time"

// ColumnProfile summarizes one spreadsheet column.
type ColumnProfile struct {
	// Name is the header text, or "Column N" when the header cell is empty.
	Name string `json:"name"`
	// Type is the inferred semantic type.
	Type TypeTag `json:"type"`
	// Format describes the observed cell format: a number-format string,
	// a masked pattern of the first sample, or "N/A" for an empty column.
	Format string `json:"format"`
	// Fake is one synthetic example value, never taken from the data.
	Fake string `json:"fake"`
}

// SheetReport holds the per-column profiles of a single sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Empty is true when the sheet has no rows at all.
	Empty bool `json:"empty,omitempty"`
	// Err carries the read error for this sheet, if any.
	Err string `json:"error,omitempty"`
	// Columns lists profiles in sheet column order.
	Columns []ColumnProfile `json:"columns,omitempty"`
}

// FileReport holds the per-sheet reports of a single workbook.
type FileReport struct {
	// Name is the workbook file name (no path).
	Name string `json:"name"`
	// Err carries the open error for this file, if any.
	Err string `json:"error,omitempty"`
	// Sheets lists sheet reports in workbook order.
	Sheets []SheetReport `json:"sheets,omitempty"`
}

// Report is the full result of one analysis run.
type Report struct {
	// Title is the report heading.
	Title string `json:"title"`
	// GeneratedAt is when the run started.
	GeneratedAt time.Time `json:"generated_at"`
	// Files lists file reports in directory enumeration order.
	Files []FileReport `json:"files"`
}
