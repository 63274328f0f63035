// Package parser reads Excel sheets into sampled, typed columns.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/models"
	"github.com/xuri/excelize/v2"
)

// Column is one sampled column of a sheet.
type Column struct {
	// Name is the header text, or "Column N" when the header cell is empty.
	Name string
	// Values holds the first non-empty cells in top-down order, bounded by
	// the sample size.
	Values []models.Value
	// Format is the format descriptor of the first sampled cell, or "N/A"
	// when the column has no samples.
	Format string
}

// ExtractColumns reads a sheet and samples every column.
// Row 1 is the header row; sampling starts at row 2 and collects at most
// sampleSize non-empty cells per column. A sheet with no rows at all
// returns nil columns.
func ExtractColumns(f *excelize.File, sheetName string, sampleSize int) ([]Column, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cols := make([]Column, 0, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		col := Column{Name: headerName(rows[0], colIdx), Format: "N/A"}

		firstCell := ""
		for rowIdx := 1; rowIdx < len(rows) && len(col.Values) < sampleSize; rowIdx++ {
			row := rows[rowIdx]
			if colIdx >= len(row) {
				continue
			}
			display := strings.TrimSpace(row[colIdx])
			if display == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if firstCell == "" {
				firstCell = cell
			}
			col.Values = append(col.Values, cellValue(f, sheetName, cell, display))
		}
		if firstCell != "" {
			col.Format = formatDescriptor(f, sheetName, firstCell, col.Values[0])
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// headerName returns the header text for a column, falling back to a
// positional name when the header cell is empty or missing.
func headerName(header []string, colIdx int) string {
	if colIdx < len(header) {
		if name := strings.TrimSpace(header[colIdx]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Column %d", colIdx+1)
}

// cellValue converts one cell into a typed Value. The cell type decides
// booleans and ISO dates, the number format decides serial dates, and the
// stored value is then tried as integer, decimal, boolean literal, and
// plain-text date before falling back to text.
func cellValue(f *excelize.File, sheetName, cell, display string) models.Value {
	raw := display
	if v, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true}); err == nil {
		if s := strings.TrimSpace(v); s != "" {
			raw = s
		}
	}

	if ctype, err := f.GetCellType(sheetName, cell); err == nil {
		switch ctype {
		case excelize.CellTypeBool:
			return models.BoolValue(strings.EqualFold(display, "true"), display)
		case excelize.CellTypeDate:
			if t, ok := parseDateTime(raw); ok {
				return models.TimeValue(t, display)
			}
		}
	}

	if cellHasDateFormat(f, sheetName, cell) {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return models.TimeValue(t, display)
			}
		}
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.IntValue(i, display)
	}
	if fl, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.FloatValue(fl, display)
	}
	if strings.EqualFold(display, "true") || strings.EqualFold(display, "false") {
		return models.BoolValue(strings.EqualFold(display, "true"), display)
	}
	if t, ok := parseDateTime(display); ok {
		return models.TimeValue(t, display)
	}
	return models.TextValue(display)
}

// dateLayouts are the plain-text date shapes recognized in unformatted
// cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cellHasDateFormat reports whether the cell's number format renders dates
// or times.
func cellHasDateFormat(f *excelize.File, sheetName, cell string) bool {
	idx, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	custom := ""
	if style.CustomNumFmt != nil {
		custom = *style.CustomNumFmt
	}
	return isDateFormat(style.NumFmt, custom)
}
